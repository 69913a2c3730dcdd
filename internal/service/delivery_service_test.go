package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryService_CreateAssignsDefaults(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	d := &domain.Delivery{Subject: "  Physics ", Name: "Lab report", Date: "2025-04-01"}
	require.NoError(t, svc.deliveries.Create(ctx, d))

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Physics", d.Subject)
	assert.Equal(t, domain.PriorityNormal, d.Priority)
	assert.Equal(t, domain.SubjectColor("Physics", nil), d.Color)
	assert.False(t, d.CreatedAt.IsZero())

	got, err := svc.deliveries.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Color, got.Color)

	event := svc.observer.last()
	assert.Equal(t, "create-delivery", event.Name)
	assert.True(t, event.Success)
}

func TestDeliveryService_CreateReusesSubjectColor(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	first := &domain.Delivery{Subject: "Art", Name: "Sketch", Date: "2025-04-01", Color: "#123456"}
	require.NoError(t, svc.deliveries.Create(ctx, first))

	second := &domain.Delivery{Subject: "Art", Name: "Portfolio", Date: "2025-05-01"}
	require.NoError(t, svc.deliveries.Create(ctx, second))

	assert.Equal(t, "#123456", second.Color)
}

func TestDeliveryService_CreateRejectsInvalid(t *testing.T) {
	svc := newTestServices(t)

	err := svc.deliveries.Create(context.Background(), &domain.Delivery{Subject: "Math", Name: "Exam", Date: "next week"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	event := svc.observer.last()
	assert.False(t, event.Success)
	assert.Error(t, event.Err)

	list, err := svc.deliveries.List(context.Background(), repository.DeliveryFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeliveryService_UpdateRecolorsOnSubjectChange(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	d := &domain.Delivery{Subject: "Biology", Name: "Essay", Date: "2025-04-01", Color: "#000000"}
	require.NoError(t, svc.deliveries.Create(ctx, d))
	createdAt := d.CreatedAt

	d.Name = "Long essay"
	require.NoError(t, svc.deliveries.Update(ctx, d))
	assert.Equal(t, "#000000", d.Color, "same subject keeps its colour")

	d.Subject = "Chemistry"
	require.NoError(t, svc.deliveries.Update(ctx, d))
	assert.Equal(t, domain.SubjectColor("Chemistry", nil), d.Color)
	assert.True(t, createdAt.Equal(d.CreatedAt))

	got, err := svc.deliveries.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Long essay", got.Name)
	assert.Equal(t, "Chemistry", got.Subject)
}

func TestDeliveryService_UpdateMissing(t *testing.T) {
	svc := newTestServices(t)

	err := svc.deliveries.Update(context.Background(), &domain.Delivery{ID: "ghost", Subject: "x", Name: "y", Date: "2025-01-01"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeliveryService_CompleteReopenDelete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	d := &domain.Delivery{Subject: "History", Name: "Quiz", Date: "2025-04-01"}
	require.NoError(t, svc.deliveries.Create(ctx, d))

	require.NoError(t, svc.deliveries.Complete(ctx, d.ID))
	pending, err := svc.deliveries.List(ctx, repository.DeliveryFilter{PendingOnly: true})
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, svc.deliveries.Reopen(ctx, d.ID))
	pending, err = svc.deliveries.List(ctx, repository.DeliveryFilter{PendingOnly: true})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, svc.deliveries.Delete(ctx, d.ID))
	assert.ErrorIs(t, svc.deliveries.Complete(ctx, d.ID), repository.ErrNotFound)
	assert.Equal(t, "complete-delivery", svc.observer.last().Name)
}

func TestDeliveryService_Subjects(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	for _, s := range []string{"Math", "Art", "Math"} {
		require.NoError(t, svc.deliveries.Create(ctx, &domain.Delivery{Subject: s, Name: "x", Date: "2025-04-01"}))
	}

	subjects, err := svc.deliveries.Subjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Art", "Math"}, subjects)
}
