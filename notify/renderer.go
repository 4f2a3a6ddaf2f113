package notify

import (
	"fmt"
	"strings"
	"time"

	"taskflow/lifecycle"
	"taskflow/model"
)

const dateLayout = "January 2, 2006"

// Renderer builds the subject and HTML body for a transition. It performs no
// I/O: everything in the output is determined by the transition, the
// recipient, and the explicitly passed timestamp.
type Renderer struct {
	// AppBaseURL is prepended to the dashboard link embedded in every body.
	AppBaseURL string
	// FromAddress is the mailbox notifications are sent from.
	FromAddress string
}

// Render produces the message for one recipient. now is the wall-clock time
// of classification; it stands in for the completion and closure dates, which
// are not separately persisted.
func (r *Renderer) Render(tr lifecycle.Transition, recipient model.User, now time.Time) model.EmailMessage {
	msg := model.EmailMessage{
		To:     recipient.Email,
		IsHTML: true,
	}

	switch tr.Kind {
	case lifecycle.Assigned:
		msg.From = fmt.Sprintf("%q <%s>", "TaskFlow Admin", r.FromAddress)
		msg.Subject = "New Task Assigned: " + tr.Task.Title
		msg.Body = r.assignedBody(tr.Task, recipient)
	case lifecycle.CompletedByAssignee:
		msg.From = fmt.Sprintf("%q <%s>", "TaskFlow System", r.FromAddress)
		msg.Subject = "Task Completed: " + tr.Task.Title
		msg.Body = r.completedBody(tr.Task, recipient, now)
	case lifecycle.Removed:
		msg.From = fmt.Sprintf("%q <%s>", "TaskFlow Admin", r.FromAddress)
		msg.Subject = "Task Closed: " + tr.Task.Title
		msg.Body = r.removedBody(tr.Task, recipient, now)
	}
	return msg
}

func priorityColor(priority string) string {
	switch priority {
	case model.PriorityHigh:
		return "#ef4444"
	case model.PriorityMedium:
		return "#f59e0b"
	}
	return "#10b981"
}

func (r *Renderer) assignedBody(t model.Task, recipient model.User) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(header("#3b82f6", "New Task Assigned"))
	b.WriteString(`<div style="padding: 20px; background-color: #f9fafb;">`)
	fmt.Fprintf(&b, "<h3>Hello %s,</h3><p>You have been assigned a new task:</p>", recipient.Name)

	b.WriteString(card("#3b82f6", t.Title))
	if t.Description != "" {
		fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>", t.Description)
	}
	fmt.Fprintf(&b, `<p><strong>Priority:</strong> <span style="color: %s; text-transform: capitalize;">%s</span></p>`,
		priorityColor(t.Priority), t.Priority)
	if t.DueDate != nil {
		fmt.Fprintf(&b, "<p><strong>Due Date:</strong> %s</p>", t.DueDate.Format(dateLayout))
	}
	fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p></div>", t.Status)

	b.WriteString("<p>Please log in to your TaskFlow dashboard to view and manage this task.</p>")
	b.WriteString(dashboardButton(r.AppBaseURL, "#3b82f6"))
	b.WriteString("<p>Best regards,<br>TaskFlow Team</p></div>")
	b.WriteString(footer())
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) completedBody(t model.Task, recipient model.User, now time.Time) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(header("#10b981", "Task Completed"))
	b.WriteString(`<div style="padding: 20px; background-color: #f9fafb;">`)
	fmt.Fprintf(&b, "<h3>Hello %s,</h3><p><strong>%s</strong> has completed the following task:</p>",
		recipient.Name, t.AssignedToName)

	b.WriteString(card("#10b981", t.Title))
	if t.Description != "" {
		fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>", t.Description)
	}
	fmt.Fprintf(&b, "<p><strong>Assigned to:</strong> %s</p>", t.AssignedToName)
	fmt.Fprintf(&b, "<p><strong>Completed on:</strong> %s</p></div>", now.Format(dateLayout))

	b.WriteString(dashboardButton(r.AppBaseURL, "#10b981"))
	b.WriteString("<p>Best regards,<br>TaskFlow System</p></div>")
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) removedBody(t model.Task, recipient model.User, now time.Time) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(header("#ef4444", "Task Closed"))
	b.WriteString(`<div style="padding: 20px; background-color: #f9fafb;">`)
	fmt.Fprintf(&b, "<h3>Hello %s,</h3><p>The following task has been closed:</p>", recipient.Name)

	b.WriteString(card("#ef4444", t.Title))
	if t.Description != "" {
		fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>", t.Description)
	}
	b.WriteString("<p><strong>Status:</strong> Closed</p>")
	fmt.Fprintf(&b, "<p><strong>Closed on:</strong> %s</p></div>", now.Format(dateLayout))

	b.WriteString("<p>If you have any questions about this task closure, please contact your administrator.</p>")
	b.WriteString("<p>Best regards,<br>TaskFlow Team</p></div>")
	b.WriteString("</div>")
	return b.String()
}

func header(color, heading string) string {
	return fmt.Sprintf(`<div style="background-color: %s; color: white; padding: 20px; text-align: center;"><h1>TaskFlow</h1><h2>%s</h2></div>`,
		color, heading)
}

func card(color, title string) string {
	return fmt.Sprintf(`<div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;"><h4 style="color: %s; margin-top: 0;">%s</h4>`,
		color, title)
}

func dashboardButton(baseURL, color string) string {
	return fmt.Sprintf(`<div style="text-align: center; margin: 30px 0;"><a href="%s/dashboard" style="background-color: %s; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Dashboard</a></div>`,
		baseURL, color)
}

func footer() string {
	return `<div style="background-color: #374151; color: #9ca3af; padding: 20px; text-align: center; font-size: 12px;"><p>This is an automated message from TaskFlow. Please do not reply to this email.</p></div>`
}
