package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

type notifier interface {
	Success(ctx context.Context, sessionID, message string) models.Notification
	Error(ctx context.Context, sessionID, message string) models.Notification
}

// dialogs bundles what every page with a form needs.
type dialogs struct {
	forms    *FormValidator
	notifier notifier
	metrics  *MetricsService
}

func (d dialogs) reject(ctx context.Context, sessionID, dialog, message string, values map[string]string) *dto.SubmissionResult {
	n := d.notifier.Error(ctx, sessionID, message)
	d.metrics.FormSubmitted(dialog, false)
	return &dto.SubmissionResult{Dialog: dialog, DialogOpen: true, Notification: &n, Form: values}
}

func (d dialogs) accept(ctx context.Context, sessionID, dialog, message string, values map[string]string) *dto.SubmissionResult {
	n := d.notifier.Success(ctx, sessionID, message)
	d.metrics.FormSubmitted(dialog, true)
	reset := make(map[string]string, len(values))
	for k := range values {
		reset[k] = ""
	}
	return &dto.SubmissionResult{Dialog: dialog, Accepted: true, Notification: &n, Form: reset}
}

func providerError(err error, what string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}

func badge(status models.Status) *models.Badge {
	b := models.BadgeFor(status)
	return &b
}

func label(text string) *models.Badge {
	b := models.LabelBadge(text)
	return &b
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// parseID reads a positive record id. Anything else is reported as not found.
func parseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, what+" not found")
	}
	return id, nil
}

func openDialogAction(path, dialog, labelText, icon, item string) dto.Action {
	q := url.Values{}
	q.Set("dialog", dialog)
	if item != "" {
		q.Set("item", item)
	}
	return dto.Action{Key: "open-" + dialog, Label: labelText, Method: "GET", Href: path + "?" + q.Encode(), Icon: icon}
}

func postAction(key, labelText, href, icon, variant string) dto.Action {
	return dto.Action{Key: key, Label: labelText, Method: "POST", Href: href, Icon: icon, Variant: variant}
}
