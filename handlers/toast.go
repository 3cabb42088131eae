package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const flashCookie = "flash_toast"

// Toast kinds understood by static/app.js.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
)

type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// mergeTrigger adds the showToast event to an HX-Trigger value. A value that
// is not a JSON object is replaced.
func mergeTrigger(existing string, t toast) (string, error) {
	events := map[string]any{}
	if existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			logger.WithError(err).Warn("toast: existing HX-Trigger is not valid JSON, overwriting")
			events = map[string]any{}
		}
	}
	events["showToast"] = t
	data, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetToast asks the client to show a toast through the HX-Trigger header,
// merging into any trigger payload already set. A short-lived flash cookie
// carries the same toast across plain redirects.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	t := toast{Message: message, Type: toastType}

	trigger, err := mergeTrigger(e.Response.Header().Get("HX-Trigger"), t)
	if err != nil {
		logger.WithError(err).Error("toast: failed to marshal HX-Trigger JSON")
		return
	}
	e.Response.Header().Set("HX-Trigger", trigger)

	cookieVal, err := json.Marshal(t)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by static/app.js
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast replies with statusCode and an error toast. HX-Reswap: none keeps
// HTMX from swapping the plain-text body into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
