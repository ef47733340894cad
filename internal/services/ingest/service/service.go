// Package service runs the ingest pipeline: one transaction per question graph
package service

import (
	"context"
	"time"

	"qanda/internal/modkit/repokit"
	"qanda/internal/platform/logger"
	"qanda/internal/services/ingest/domain"
	"qanda/internal/services/ingest/guardrails"

	"github.com/google/uuid"
)

// Config holds the ingest tuning knobs
type Config struct {
	Timeouts guardrails.Timeouts

	// SyncIdentities realigns identity sequences after a successful run
	SyncIdentities bool
}

// Service implements domain.RunnerPort
type Service struct {
	DB      repokit.TxRunner
	Binder  repokit.Binder[domain.StorageRepo]
	Norm    domain.Normalizer
	Counter domain.Counter
	Cfg     Config
}

type nopCounter struct{}

func (nopCounter) Ingested(string, string) {}

// New constructs the ingest service; counter may be nil
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo], norm domain.Normalizer, counter domain.Counter, cfg Config) *Service {
	if db == nil {
		panic("ingest.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ingest.Service requires a non nil Repo binder")
	}
	if norm == nil {
		panic("ingest.Service requires a non nil Normalizer")
	}
	if counter == nil {
		counter = nopCounter{}
	}
	return &Service{DB: db, Binder: binder, Norm: norm, Counter: counter, Cfg: cfg}
}

// Ingest writes every question of doc in order and stops at the first failure.
// Questions committed before the failure stay committed
func (s *Service) Ingest(ctx context.Context, doc domain.Document) (domain.Stats, error) {
	started := time.Now()
	st := domain.Stats{RunID: uuid.NewString()}
	ctx = logger.WithRun(ctx, st.RunID)
	log := logger.Named("ingest").With().Str("run_id", st.RunID).Logger()

	ctx, cancel := guardrails.ForRun(ctx, s.Cfg.Timeouts)
	defer cancel()

	log.Info().Int("questions", len(doc.Questions)).Msg("ingest started")

	for i := range doc.Questions {
		q := &doc.Questions[i]
		part, err := s.ingestQuestion(ctx, q)
		if err != nil {
			s.Counter.Ingested(domain.KindQuestion, "failed")
			st.Elapsed = time.Since(started)
			log.Error().Err(err).Int64("question_id", q.ID).Int("index", i).Msg("ingest aborted")
			return st, err
		}
		st.Add(part)
		s.count(part)
	}

	if s.Cfg.SyncIdentities {
		if err := s.Binder.Bind(s.DB).SyncIdentities(ctx); err != nil {
			st.Elapsed = time.Since(started)
			return st, err
		}
	}

	st.Elapsed = time.Since(started)
	log.Info().
		Int("questions", st.Questions).
		Int("question_comments", st.QuestionComments).
		Int("answers", st.Answers).
		Int("answer_comments", st.AnswerComments).
		Int("users_inserted", st.UsersInserted).
		Int("users_skipped", st.UsersSkipped).
		Dur("elapsed", st.Elapsed).
		Msg("ingest finished")
	return st, nil
}

// ingestQuestion writes q and its descendants depth-first inside one transaction
// the returned stats only count work that committed
func (s *Service) ingestQuestion(parent context.Context, q *domain.Question) (domain.Stats, error) {
	ctx, cancel := guardrails.ForQuestion(parent, s.Cfg.Timeouts)
	defer cancel()

	var part domain.Stats
	err := repokit.WithTx(ctx, s.DB, s.Binder, func(r domain.StorageRepo) error {
		part = domain.Stats{}
		if err := s.ensureUser(ctx, r, q.User, &part); err != nil {
			return err
		}
		if err := r.InsertQuestion(ctx, domain.QuestionRow{
			ID:       q.ID,
			Title:    q.Title,
			HTML:     q.Body,
			Text:     s.Norm.ToPlainText(q.Body),
			Creation: q.Creation,
			Score:    q.Score,
			UserID:   q.User.ID,
		}); err != nil {
			return err
		}
		part.Questions++

		for _, c := range q.Comments {
			if err := s.ensureUser(ctx, r, c.User, &part); err != nil {
				return err
			}
			if err := r.InsertQuestionComment(ctx, domain.CommentRow{
				ID: c.ID, ParentID: q.ID, HTML: c.Body, UserID: c.User.ID,
			}); err != nil {
				return err
			}
			part.QuestionComments++
		}

		for _, a := range q.Answers {
			if err := s.ensureUser(ctx, r, a.User, &part); err != nil {
				return err
			}
			if err := r.InsertAnswer(ctx, domain.AnswerRow{
				ID:         a.ID,
				QuestionID: q.ID,
				HTML:       a.Body,
				Text:       s.Norm.ToPlainText(a.Body),
				Creation:   a.Creation,
				Score:      a.Score,
				UserID:     a.User.ID,
				Accepted:   a.Accepted,
			}); err != nil {
				return err
			}
			part.Answers++

			for _, c := range a.Comments {
				if err := s.ensureUser(ctx, r, c.User, &part); err != nil {
					return err
				}
				if err := r.InsertAnswerComment(ctx, domain.CommentRow{
					ID: c.ID, ParentID: a.ID, HTML: c.Body, UserID: c.User.ID,
				}); err != nil {
					return err
				}
				part.AnswerComments++
			}
		}
		return nil
	})
	if err != nil {
		return domain.Stats{}, err
	}
	return part, nil
}

// ensureUser inserts u unless its id is already stored; a stored name is never changed
func (s *Service) ensureUser(ctx context.Context, r domain.StorageRepo, u domain.User, st *domain.Stats) error {
	exists, err := r.UserExists(ctx, u.ID)
	if err != nil {
		return err
	}
	if exists {
		logger.C(ctx).Debug().Int64("user_id", u.ID).Msg("user exists; skipped")
		st.UsersSkipped++
		return nil
	}
	if err := r.InsertUser(ctx, u); err != nil {
		return err
	}
	st.UsersInserted++
	return nil
}

func (s *Service) count(st domain.Stats) {
	tick := func(kind, outcome string, n int) {
		for range n {
			s.Counter.Ingested(kind, outcome)
		}
	}
	tick(domain.KindQuestion, "inserted", st.Questions)
	tick(domain.KindQuestionComment, "inserted", st.QuestionComments)
	tick(domain.KindAnswer, "inserted", st.Answers)
	tick(domain.KindAnswerComment, "inserted", st.AnswerComments)
	tick(domain.KindUser, "inserted", st.UsersInserted)
	tick(domain.KindUser, "skipped", st.UsersSkipped)
}
