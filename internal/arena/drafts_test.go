package arena_test

import (
	"context"
	"testing"

	"github.com/mauv0809/arena-agenda/internal/agenda"
	"github.com/mauv0809/arena-agenda/internal/arena"
	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDraft_NormalisesDayAndHour(t *testing.T) {
	f := setupService(t, nil)
	session := f.svc.OpenSession()

	e, err := f.svc.AddDraft(context.Background(), session, arena.DraftRequest{CourtID: courtID, Day: "09/03/2026", Hour: "9:00:00"})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", e.Day)
	assert.Equal(t, "09:00", e.Hour)
	assert.Equal(t, agenda.KindBooking, e.Kind)
	assert.Equal(t, agenda.StatusConfirmed, e.Status)
}

func TestAddDraft_BlockShowsBlocked(t *testing.T) {
	f := setupService(t, nil)
	ctx := context.Background()
	session := f.svc.OpenSession()

	_, err := f.svc.AddDraft(ctx, session, arena.DraftRequest{Kind: agenda.KindBlock, CourtID: courtID, Day: "hoje", Hour: "12:00", Title: "Maintenance"})
	require.NoError(t, err)

	day, err := f.svc.AgendaView(ctx, courtID, "2026-03-09", session)
	require.NoError(t, err)
	assert.Equal(t, agenda.SlotBlocked, statusAt(t, day, "12:00").Status)
}

func TestDraftLifecycle(t *testing.T) {
	f := setupService(t, nil)
	ctx := context.Background()
	session := f.svc.OpenSession()

	e, err := f.svc.AddDraft(ctx, session, arena.DraftRequest{CourtID: courtID, Day: "2026-03-09", Hour: "20:00", Customer: "Ana"})
	require.NoError(t, err)

	toggled, err := f.svc.ToggleDraft(session, e.ID)
	require.NoError(t, err)
	assert.Equal(t, agenda.StatusCanceled, toggled.Status)

	day, err := f.svc.AgendaView(ctx, courtID, "2026-03-09", session)
	require.NoError(t, err)
	assert.Equal(t, agenda.SlotCanceled, statusAt(t, day, "20:00").Status)

	require.NoError(t, f.svc.RemoveDraft(session, e.ID))
	day, err = f.svc.AgendaView(ctx, courtID, "2026-03-09", session)
	require.NoError(t, err)
	assert.Equal(t, agenda.SlotFree, statusAt(t, day, "20:00").Status)

	assert.True(t, f.svc.CloseSession(session))
	_, err = f.svc.ListDrafts(session)
	assert.ErrorIs(t, err, agenda.ErrSessionNotFound)
}

func TestAddDraft_Errors(t *testing.T) {
	f := setupService(t, nil)
	ctx := context.Background()
	session := f.svc.OpenSession()

	_, err := f.svc.AddDraft(ctx, "missing", arena.DraftRequest{CourtID: courtID, Day: "2026-03-09", Hour: "10:00"})
	assert.ErrorIs(t, err, agenda.ErrSessionNotFound)

	_, err = f.svc.AddDraft(ctx, session, arena.DraftRequest{CourtID: "other", Day: "2026-03-09", Hour: "10:00"})
	assert.ErrorIs(t, err, court.ErrNotFound)

	_, err = f.svc.AddDraft(ctx, session, arena.DraftRequest{CourtID: courtID, Day: "whenever", Hour: "10:00"})
	assert.ErrorIs(t, err, arena.ErrInvalidDay)

	_, err = f.svc.AddDraft(ctx, session, arena.DraftRequest{CourtID: courtID, Day: "2026-03-09", Hour: "25:00"})
	assert.ErrorIs(t, err, agenda.ErrIncompleteDraft)

	_, err = f.svc.AddDraft(ctx, session, arena.DraftRequest{Kind: "party", CourtID: courtID, Day: "2026-03-09", Hour: "10:00"})
	assert.ErrorIs(t, err, arena.ErrUnknownDraftKind)

	drafts, err := f.svc.ListDrafts(session)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}
