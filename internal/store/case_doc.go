package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/casetalk/casetalk/ent"
	"github.com/casetalk/casetalk/ent/casedoc"
	"github.com/casetalk/casetalk/internal/scenario"
)

// caseRepo implements CaseRepo using the ent client. Cases are stored
// as JSON documents, one row per (case, version).
type caseRepo struct {
	client *ent.Client
}

func (r *caseRepo) SaveCase(ctx context.Context, c *scenario.Case) error {
	data, err := caseToMap(c)
	if err != nil {
		return fmt.Errorf("marshal case: %w", err)
	}

	// Replace an existing row for this (id, version): drafts are saved
	// repeatedly under the same version until publish bumps it.
	existing, err := r.client.CaseDoc.Query().
		Where(casedoc.CaseID(c.ID), casedoc.Version(c.Version)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query case: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetTitle(c.Title).
			SetStatus(string(c.Status)).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update case: %w", err)
		}
		return nil
	}

	_, err = r.client.CaseDoc.Create().
		SetCaseID(c.ID).
		SetVersion(c.Version).
		SetTitle(c.Title).
		SetStatus(string(c.Status)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save case: %w", err)
	}
	return nil
}

func (r *caseRepo) GetCase(ctx context.Context, caseID string) (*scenario.Case, error) {
	doc, err := r.client.CaseDoc.Query().
		Where(casedoc.CaseID(caseID)).
		Order(ent.Desc(casedoc.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query case: %w", err)
	}
	return mapToCase(doc.Data)
}

func (r *caseRepo) GetPublished(ctx context.Context, caseID string) (*scenario.Case, error) {
	doc, err := r.client.CaseDoc.Query().
		Where(casedoc.CaseID(caseID), casedoc.Status(string(scenario.StatusPublished))).
		Order(ent.Desc(casedoc.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query published case: %w", err)
	}
	return mapToCase(doc.Data)
}

func (r *caseRepo) ListCases(ctx context.Context) ([]*scenario.Case, error) {
	docs, err := r.client.CaseDoc.Query().
		Order(ent.Asc(casedoc.FieldCaseID), ent.Desc(casedoc.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	// Keep only the newest version of each case.
	var out []*scenario.Case
	seen := make(map[string]bool)
	for _, doc := range docs {
		if seen[doc.CaseID] {
			continue
		}
		seen[doc.CaseID] = true
		c, err := mapToCase(doc.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// caseToMap converts a case to map[string]any for ent JSON storage.
func caseToMap(c *scenario.Case) (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToCase converts a stored JSON document back to a case.
func mapToCase(m map[string]any) (*scenario.Case, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal case data: %w", err)
	}
	var c scenario.Case
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal case: %w", err)
	}
	return &c, nil
}
