package blocking

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BlockCreator is the remote create-blocked-period operation the resolver
// orchestrates. The operation itself decides between committing a record and
// reporting conflicts; the resolver never writes storage directly.
type BlockCreator interface {
	CreateBlockedPeriod(ctx context.Context, in CreateInput) (*CreateResult, error)
}

// RosterEntry is one professional eligible for the "all professionals"
// fan-out.
type RosterEntry struct {
	ID   uuid.UUID
	Name string
}

// Roster supplies the active professional list.
type Roster interface {
	ListActive(ctx context.Context) ([]RosterEntry, error)
}

// BlockRequest is the user's blocking request. ProfessionalSelector is a
// professional id or the AllProfessionals sentinel.
type BlockRequest struct {
	ProfessionalSelector string `json:"professionalId"`
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	Reason               string `json:"reason"`
	ConfirmConflicts     bool   `json:"confirmConflicts"`
}

// Outcome aggregates the per-professional results of one blocking request.
// When Conflicts is non-empty and the request was not confirmed, the caller
// is expected to re-issue the request with ConfirmConflicts set; Created
// still lists the periods committed during the check pass.
type Outcome struct {
	Created   []*BlockedPeriod `json:"created"`
	Conflicts []Conflict       `json:"conflicts"`
}

// HasConflicts reports whether the request is paused pending confirmation.
func (o *Outcome) HasConflicts() bool { return len(o.Conflicts) > 0 }

// Resolver runs the two-phase create-or-confirm protocol for one
// professional or for the whole roster.
type Resolver struct {
	creator BlockCreator
	roster  Roster
	logger  zerolog.Logger
}

func NewResolver(creator BlockCreator, roster Roster, logger zerolog.Logger) *Resolver {
	return &Resolver{creator: creator, roster: roster, logger: logger}
}

// CreateBlock validates the request locally, then dispatches it. The single
// path issues one create; the "all" path fans out one create per roster
// member with the same confirm flag, joins after every request has settled,
// and aggregates conflicts annotated with the professional's display name.
// A failed member request is logged and skipped; siblings are unaffected.
// Nothing is rolled back when the aggregate reports conflicts: members
// without conflicts were already committed during the check pass.
func (r *Resolver) CreateBlock(ctx context.Context, req BlockRequest) (*Outcome, error) {
	if strings.TrimSpace(req.ProfessionalSelector) == "" {
		return nil, validationErrorf("selecione um profissional")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, validationErrorf("informe o motivo do bloqueio")
	}
	if len([]rune(reason)) > MaxReasonLen {
		return nil, validationErrorf("motivo deve ter no máximo %d caracteres", MaxReasonLen)
	}

	if req.ProfessionalSelector != AllProfessionals {
		return r.createSingle(ctx, req, reason)
	}
	return r.createForAll(ctx, req, reason)
}

func (r *Resolver) createSingle(ctx context.Context, req BlockRequest, reason string) (*Outcome, error) {
	professionalID, err := uuid.Parse(req.ProfessionalSelector)
	if err != nil {
		return nil, validationErrorf("profissional inválido")
	}

	res, err := r.creator.CreateBlockedPeriod(ctx, CreateInput{
		ProfessionalID:   professionalID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Reason:           reason,
		ConfirmConflicts: req.ConfirmConflicts,
	})
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	if res.Created != nil {
		out.Created = append(out.Created, res.Created)
	}
	out.Conflicts = append(out.Conflicts, res.Conflicts...)
	return out, nil
}

func (r *Resolver) createForAll(ctx context.Context, req BlockRequest, reason string) (*Outcome, error) {
	roster, err := r.roster.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	if len(roster) == 0 {
		return nil, validationErrorf("nenhum profissional cadastrado")
	}

	// One request per professional, dispatched concurrently, joined after
	// all have settled. Results keep roster order.
	results := make([]*CreateResult, len(roster))
	var wg sync.WaitGroup
	for i, entry := range roster {
		wg.Add(1)
		go func(i int, entry RosterEntry) {
			defer wg.Done()
			res, err := r.creator.CreateBlockedPeriod(ctx, CreateInput{
				ProfessionalID:   entry.ID,
				StartDate:        req.StartDate,
				EndDate:          req.EndDate,
				Reason:           reason,
				ConfirmConflicts: req.ConfirmConflicts,
			})
			if err != nil {
				r.logger.Error().Err(err).
					Str("professional_id", entry.ID.String()).
					Str("professional_name", entry.Name).
					Msg("blocked period create failed during fan-out")
				return
			}
			results[i] = res
		}(i, entry)
	}
	wg.Wait()

	out := &Outcome{}
	for i, res := range results {
		if res == nil {
			continue // failed member, already logged
		}
		if res.Created != nil {
			out.Created = append(out.Created, res.Created)
		}
		for _, c := range res.Conflicts {
			c.ProfessionalName = roster[i].Name
			out.Conflicts = append(out.Conflicts, c)
		}
	}
	return out, nil
}
