package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// DefaultAuditParallelism bounds concurrent record checks in Audit.
const DefaultAuditParallelism = 8

// IssueKind classifies an audit finding.
type IssueKind string

const (
	// IssueSchema marks a record that does not match the AccountRecord schema.
	IssueSchema IssueKind = "schema"
	// IssueResume marks a schema-valid record whose resume holds an invalid
	// email, phone or LinkedIn URL, or a blank or repeated skill.
	IssueResume IssueKind = "resume"
	// IssueStraySession marks a record with session=true that the pointer
	// does not name.
	IssueStraySession IssueKind = "stray_session"
	// IssueDanglingPointer marks a pointer naming a missing record.
	IssueDanglingPointer IssueKind = "dangling_pointer"
	// IssueInactivePointer marks a pointer naming a record whose session
	// flag is false.
	IssueInactivePointer IssueKind = "inactive_pointer"
)

// Issue is one inconsistency found by Audit.
type Issue struct {
	ID     string    `json:"id"`
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail"`
}

// Report summarizes an audit.
type Report struct {
	Checked     int     `json:"checked"`
	CurrentUser string  `json:"currentUser,omitempty"`
	Issues      []Issue `json:"issues"`
}

// OK reports whether the audit found nothing.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

type recordCheck struct {
	issues  []Issue
	session bool
	decoded bool
}

// Audit checks every stored record against the AccountRecord schema,
// validates the resume of each schema-valid record, and checks that the session flags agree with the current-user pointer. It
// reports and never repairs. parallelism <= 0 uses DefaultAuditParallelism.
func (s *Store) Audit(ctx context.Context, parallelism int) (*Report, error) {
	if parallelism <= 0 {
		parallelism = DefaultAuditParallelism
	}

	ids, err := s.IDs(ctx)
	if err != nil {
		return nil, err
	}
	current, hasCurrent, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	checks := make([]recordCheck, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, id := range ids {
		g.Go(func() error {
			raw, ok, err := s.kv.GetItem(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to read account %q: %w", id, err)
			}
			if !ok {
				// Removed after listing.
				return nil
			}
			checks[i] = checkRecord(id, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(ids), CurrentUser: current}
	pointerTarget := -1
	for i, id := range ids {
		c := checks[i]
		report.Issues = append(report.Issues, c.issues...)
		if hasCurrent && id == current {
			pointerTarget = i
			continue
		}
		if c.decoded && c.session {
			report.Issues = append(report.Issues, Issue{
				ID:     id,
				Kind:   IssueStraySession,
				Detail: "session flag is set but the account is not the current user",
			})
		}
	}

	if hasCurrent {
		switch {
		case pointerTarget < 0:
			report.Issues = append(report.Issues, Issue{
				ID:     current,
				Kind:   IssueDanglingPointer,
				Detail: "current user names a missing account",
			})
		case checks[pointerTarget].decoded && !checks[pointerTarget].session:
			report.Issues = append(report.Issues, Issue{
				ID:     current,
				Kind:   IssueInactivePointer,
				Detail: "current user's session flag is false",
			})
		}
	}

	s.log.Info().
		Int("checked", report.Checked).
		Int("issues", len(report.Issues)).
		Msg("audit finished")
	return report, nil
}

func checkRecord(id, raw string) recordCheck {
	var c recordCheck

	schemaErr := schemas.ValidateAccountRecord(raw)
	if schemaErr != nil {
		c.issues = append(c.issues, Issue{ID: id, Kind: IssueSchema, Detail: describeSchemaErr(schemaErr)})
	}

	var rec struct {
		Session bool                 `json:"session"`
		Resume  types.ResumeDocument `json:"resume"`
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		var flags struct {
			Session bool `json:"session"`
		}
		if json.Unmarshal([]byte(raw), &flags) == nil {
			c.decoded = true
			c.session = flags.Session
		}
		return c
	}
	c.decoded = true
	c.session = rec.Session

	if schemaErr == nil {
		if errs, err := rec.Resume.Validate(); err == nil && errs.Len() > 0 {
			c.issues = append(c.issues, Issue{ID: id, Kind: IssueResume, Detail: describeFieldErrs(errs)})
		}
	}
	return c
}

func describeFieldErrs(errs *validation.FieldErrors) string {
	fe := errs.Errors[0]
	if len(errs.Errors) == 1 {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", fe.Field, fe.Message, len(errs.Errors)-1)
}

func describeSchemaErr(err error) string {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) && len(verr.Errors) > 0 {
		fe := verr.Errors[0]
		if len(verr.Errors) == 1 {
			return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
		}
		return fmt.Sprintf("%s: %s (and %d more)", fe.Field, fe.Message, len(verr.Errors)-1)
	}
	return err.Error()
}
