// Package scheduler runs the periodic due-date reminder job.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"taskflow/model"
	"taskflow/notify"
	"taskflow/store"
)

// ReminderJob emails assignees about tasks coming due. Like the notification
// pipeline it is best-effort: a failed send is logged and skipped.
type ReminderJob struct {
	cronScheduler *cron.Cron
	tasks         *store.TaskStore
	directory     notify.UserDirectory
	dispatcher    notify.Dispatcher
	fromAddress   string
	appBaseURL    string
	jobID         cron.EntryID
}

func NewReminderJob(tasks *store.TaskStore, directory notify.UserDirectory, dispatcher notify.Dispatcher, fromAddress, appBaseURL string) *ReminderJob {
	return &ReminderJob{
		cronScheduler: cron.New(),
		tasks:         tasks,
		directory:     directory,
		dispatcher:    dispatcher,
		fromAddress:   fromAddress,
		appBaseURL:    appBaseURL,
	}
}

// Start schedules the daily run at 08:00.
func (j *ReminderJob) Start() error {
	var err error
	j.jobID, err = j.cronScheduler.AddFunc("0 8 * * *", j.run)
	if err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	j.cronScheduler.Start()
	return nil
}

func (j *ReminderJob) Stop() {
	if j.cronScheduler != nil {
		j.cronScheduler.Stop()
	}
}

func (j *ReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	all, err := j.tasks.GetAll(ctx)
	if err != nil {
		log.Printf("scheduler: loading tasks for reminders: %v", err)
		return
	}

	for _, t := range DueSoon(all, time.Now()) {
		assignee, err := j.directory.GetByID(ctx, t.AssignedTo)
		if err != nil {
			log.Printf("scheduler: skipping reminder for task %s: %v", t.TaskID, err)
			continue
		}
		if err := j.dispatcher.Send(j.reminderMessage(t, *assignee)); err != nil {
			log.Printf("scheduler: reminder for task %s to %s failed: %v", t.TaskID, assignee.Email, err)
		}
	}
}

// DueSoon filters to unfinished tasks whose due date falls within a day of
// now, in either direction, so freshly overdue work still gets one nudge.
func DueSoon(tasks []model.Task, now time.Time) []model.Task {
	var due []model.Task
	for _, t := range tasks {
		if t.Status == model.StatusCompleted || t.DueDate == nil {
			continue
		}
		diff := t.DueDate.Sub(now)
		if diff < 24*time.Hour && diff > -24*time.Hour {
			due = append(due, t)
		}
	}
	return due
}

func (j *ReminderJob) reminderMessage(t model.Task, assignee model.User) model.EmailMessage {
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`+
		`<div style="background-color: #f59e0b; color: white; padding: 20px; text-align: center;"><h1>TaskFlow</h1><h2>Task Due Soon</h2></div>`+
		`<div style="padding: 20px; background-color: #f9fafb;">`+
		`<h3>Hello %s,</h3><p>A task assigned to you is due soon:</p>`+
		`<div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`+
		`<h4 style="color: #f59e0b; margin-top: 0;">%s</h4>`+
		`<p><strong>Due Date:</strong> %s</p>`+
		`<p><strong>Status:</strong> %s</p></div>`+
		`<div style="text-align: center; margin: 30px 0;"><a href="%s/dashboard" style="background-color: #f59e0b; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Dashboard</a></div>`+
		`<p>Best regards,<br>TaskFlow Team</p></div></div>`,
		assignee.Name, t.Title, t.DueDate.Format("January 2, 2006"), t.Status, j.appBaseURL)

	return model.EmailMessage{
		From:    fmt.Sprintf("%q <%s>", "TaskFlow System", j.fromAddress),
		To:      assignee.Email,
		Subject: "Task Due Soon: " + t.Title,
		Body:    body,
		IsHTML:  true,
	}
}
