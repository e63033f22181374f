package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/client/services"
	"github.com/dmitrijs2005/mailtriage/internal/client/view"
)

// SwitchTab enters the named tab and renders it. A refused admin entry is
// already notified by the controller.
func (a *App) SwitchTab(ctx context.Context, name string) error {
	tab, err := view.ParseTab(name)
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.controller.Enter(ctx, tab); err != nil {
		if errors.Is(err, view.ErrAccessDenied) {
			return err
		}
		return a.fail(ctx, err)
	}
	a.renderActive()
	return nil
}

// Refresh re-enters the active tab, which reloads its data.
func (a *App) Refresh(ctx context.Context) error {
	tab := a.controller.ActiveTab()
	if tab == "" {
		tab = view.TabDashboard
	}
	return a.SwitchTab(ctx, string(tab))
}

// Classify prompts for one message and shows its score. A new score
// replaces the one feedback applies to, so the feedback form is cleared.
func (a *App) Classify(ctx context.Context) error {
	sender, err := getSimpleText(a.reader, "Sender", a.out)
	if err != nil {
		return err
	}
	subject, err := getSimpleText(a.reader, "Subject", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Body", a.out)
	if err != nil {
		return err
	}

	return a.withGate(ctx, "classify", func() error {
		res, err := a.classifier.Classify(ctx, sender, subject, body)
		if err != nil {
			return err
		}
		a.feedback.Clear()
		printlnFn(renderClassification(res))
		msg := res.Message
		if msg == "" {
			msg = "Email classified"
		}
		notify.Success(a.queue, msg)
		return nil
	})
}

// Feedback corrects the category of the last scored email.
func (a *App) Feedback(ctx context.Context) error {
	if _, ok := a.state.CurrentEmail(); !ok {
		return a.fail(ctx, services.ErrNoActiveEmail)
	}
	if cats, ok := a.state.Categories(); ok && len(cats) > 0 {
		printlnFn(renderCategories(cats))
	}

	categoryID, err := getSimpleText(a.reader, "Correct category id", a.out)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Comment (optional)", a.out)
	if err != nil {
		return err
	}
	a.feedback.CategoryID = categoryID
	a.feedback.Text = text

	return a.withGate(ctx, "feedback", func() error {
		if err := a.feedback.Submit(ctx, a.classifier); err != nil {
			return err
		}
		notify.Success(a.queue, "Feedback submitted, thank you")
		return nil
	})
}

// Upload submits a batch read from path, or pasted when path is empty.
func (a *App) Upload(ctx context.Context, path string) error {
	var raw string
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return a.fail(ctx, fmt.Errorf("read %s: %w", path, err))
		}
		raw = string(data)
	} else {
		text, err := getMultiline(a.reader, `Paste {"emails": [...]}`, a.out)
		if err != nil {
			return err
		}
		raw = text
	}

	return a.withGate(ctx, "upload", func() error {
		report, err := a.uploader.SubmitBatch(ctx, raw)
		if err != nil {
			return err
		}
		if !report.Success {
			notify.Error(a.queue, report.Message)
			return nil
		}
		if len(report.Emails) > 0 {
			printlnFn(renderEmailTable(report.Emails, a.colors))
		}
		notify.Success(a.queue, fmt.Sprintf("%s (%d emails)", strings.TrimSpace(report.Message), report.Count))
		return nil
	})
}

func (a *App) Retrain(ctx context.Context) error {
	return a.withGate(ctx, "retrain", func() error {
		msg, err := a.admin.Retrain(ctx)
		if err != nil {
			return err
		}
		if msg == "" {
			msg = "Model retrained"
		}
		notify.Success(a.queue, msg)
		return nil
	})
}

// Show prints one stored email.
func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return a.fail(ctx, fmt.Errorf("invalid email id %q", rawID))
	}
	return a.withGate(ctx, "show", func() error {
		email, err := a.lookup.Email(ctx, id)
		if err != nil {
			return err
		}
		if email == nil {
			notify.Info(a.queue, fmt.Sprintf("Email %d not found", id))
			return nil
		}
		printlnFn(renderEmail(email, a.colors))
		return nil
	})
}

// renderActive prints whatever the active tab holds.
func (a *App) renderActive() {
	c := a.controller
	switch c.ActiveTab() {
	case view.TabDashboard:
		printlnFn(renderStats(c.Stats()))
	case view.TabClassify:
		printlnFn(renderCategories(c.Categories()))
		printlnFn(mutedStyle.Render("Type 'classify' to score an email, 'feedback' to correct the last one."))
	case view.TabEmails:
		printlnFn(renderEmailTable(c.Emails(), a.colors))
	case view.TabUpload:
		printlnFn(mutedStyle.Render(`Type 'upload <file>' or 'upload' and paste {"emails": [{"sender": ..., "subject": ..., "body": ...}]}.`))
	case view.TabAdmin:
		printlnFn(renderCategories(c.Categories()))
		printlnFn(renderUsers(c.Users()))
		printlnFn(mutedStyle.Render("Type 'retrain' to retrain the classifier from feedback."))
	}
}
