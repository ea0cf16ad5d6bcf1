package scheduler

import (
	"context"
	"fmt"
	"mindu/metrics"
	"mindu/model"
	"mindu/services"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrency bounds the per-cycle fan-out when no value is
// configured. The due set itself is unbounded.
const DefaultMaxConcurrency = 16

// BatchSummary is the outcome of one dispatch cycle.
type BatchSummary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Dispatcher processes the due set: every pending notification whose
// scheduled time has passed is delivered once and moved to sent or failed.
// A cycle never returns an error to its caller; all failures are contained
// per item or logged.
type Dispatcher struct {
	store          services.NotificationStore
	users          services.UserDirectory
	push           services.PushSender
	log            *logrus.Logger
	maxConcurrency int
}

func NewDispatcher(store services.NotificationStore, users services.UserDirectory, push services.PushSender, log *logrus.Logger, maxConcurrency int) *Dispatcher {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Dispatcher{
		store:          store,
		users:          users,
		push:           push,
		log:            log,
		maxConcurrency: maxConcurrency,
	}
}

// RunCycle queries the due set at now and fans delivery out over it. Items
// are independent: one item's failure marks that item failed and nothing
// else. If the due-set query itself fails the cycle aborts with no state
// change.
func (d *Dispatcher) RunCycle(ctx context.Context, now time.Time) BatchSummary {
	start := time.Now()
	defer func() {
		metrics.DispatchCycleDuration.Observe(time.Since(start).Seconds())
	}()

	due, err := d.store.Due(ctx, now)
	if err != nil {
		metrics.DispatchCycleAborted.Inc()
		d.log.WithError(err).Error("Dispatch cycle aborted: due-set query failed")
		return BatchSummary{}
	}
	if len(due) == 0 {
		d.log.Debug("Dispatch cycle found no due notifications")
		return BatchSummary{}
	}

	d.log.WithField("count", len(due)).Info("Processing due notifications")

	outcomes := make([]error, len(due))
	group := new(errgroup.Group)
	group.SetLimit(d.maxConcurrency)
	for i, n := range due {
		group.Go(func() error {
			outcomes[i] = d.deliver(ctx, n)
			return nil
		})
	}
	// Delivery errors are collected in outcomes, never returned to the group.
	_ = group.Wait()

	summary := BatchSummary{Attempted: len(due)}
	for i, deliveryErr := range outcomes {
		if deliveryErr != nil {
			summary.Failed++
			metrics.NotificationsFailed.Inc()
			d.log.WithFields(logrus.Fields{
				"notificationId": due[i].NotificationID,
				"userId":         due[i].UserID,
			}).WithError(deliveryErr).Warn("Notification delivery failed")
		} else {
			summary.Succeeded++
			metrics.NotificationsSent.Inc()
		}
	}

	d.log.WithFields(logrus.Fields{
		"attempted": summary.Attempted,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Dispatch cycle completed")
	return summary
}

// deliver runs one item's pipeline and records the terminal status. On any
// failure the item is marked failed; the error is returned only for the
// cycle summary.
func (d *Dispatcher) deliver(ctx context.Context, n model.ScheduledNotification) error {
	if err := d.attempt(ctx, n); err != nil {
		if markErr := d.store.MarkFailed(ctx, n.NotificationID); markErr != nil {
			d.log.WithField("notificationId", n.NotificationID).WithError(markErr).Error("Could not mark notification failed")
		}
		return err
	}
	return nil
}

func (d *Dispatcher) attempt(ctx context.Context, n model.ScheduledNotification) error {
	token, err := d.users.PushToken(ctx, n.UserID)
	if err != nil {
		return err
	}

	receipt, err := d.push.Send(ctx, token, n)
	if err != nil {
		return fmt.Errorf("push send: %w", err)
	}

	sentAt := time.Now()
	if err := d.store.MarkSent(ctx, n.NotificationID, sentAt); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	session := model.DeliverySession{
		UserID:         n.UserID,
		NotificationID: n.NotificationID,
		SessionTime:    n.ScheduledTime,
		Status:         model.SessionStatusCompleted,
		CreatedAt:      time.Now(),
		NotificationData: model.NotificationData{
			Title: n.Title,
			Body:  n.Body,
		},
	}
	if _, err := d.store.AppendSession(ctx, session); err != nil {
		return fmt.Errorf("append session: %w", err)
	}

	d.log.WithFields(logrus.Fields{
		"notificationId": n.NotificationID,
		"receipt":        receipt,
	}).Info("Notification sent")
	return nil
}
