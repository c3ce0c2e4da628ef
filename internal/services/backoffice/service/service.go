// Package service runs back-office use cases: each one validates through the
// domain packages, persists inside a single storage transaction and appends
// an activity entry for the acting operator.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/filter"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/logging"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/platform/otel"
	"github.com/tppb-bridge/backoffice/internal/platform/requestctx"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
)

const tracerName = "backoffice/service"

// Options tunes a Service. Zero values fall back to production defaults.
type Options struct {
	Logger      *zap.Logger
	Now         func() time.Time
	IDGenerator func() (string, error)
	// TaxRate replaces the quotation VAT default when set.
	TaxRate *money.Amount
}

// Service is the back-office application layer.
type Service struct {
	store   storage.Store
	logger  *zap.Logger
	tracer  trace.Tracer
	now     func() time.Time
	newID   func() (string, error)
	taxRate *money.Amount
}

// New builds a service over store.
func New(store storage.Store, opts Options) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.IDGenerator
	if newID == nil {
		newID = id.NewID
	}
	return &Service{
		store:   store,
		logger:  logging.OrNop(opts.Logger),
		tracer:  otel.Tracer(tracerName),
		now:     func() time.Time { return now().UTC() },
		newID:   newID,
		taxRate: opts.TaxRate,
	}, nil
}

// update runs fn inside one storage transaction under a span named op.
func (s *Service) update(ctx context.Context, op string, fn func(storage.Stores) error) error {
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()
	err := s.store.InTx(ctx, fn)
	if errors.Is(err, storage.ErrBusy) {
		err = apperrors.Wrap(apperrors.CodeStorageBusy, "storage is busy", err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// view runs fn against the store without a transaction.
func (s *Service) view(ctx context.Context, op string, fn func(storage.Stores) error) error {
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()
	err := fn(s.store)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *Service) operator(ctx context.Context) string {
	return requestctx.OperatorName(ctx, activity.DefaultUser)
}

// record appends an activity entry within the caller's transaction.
func (s *Service) record(ctx context.Context, st storage.Stores, action activity.Action, module, entityType, entityID, entityName, details string) error {
	entry, err := activity.New(s.operator(ctx), action, module, entityType, entityID, entityName, details, s.now, s.newID)
	if err != nil {
		return err
	}
	if err := st.AppendActivity(ctx, entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (s *Service) logChange(ctx context.Context, msg string, fields ...zap.Field) {
	fields = append(fields, zap.String("operator", s.operator(ctx)))
	s.logger.Info(msg, fields...)
}

// storageErr maps storage sentinels to coded errors for entity.
func storageErr(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		coded := apperrors.NotFound(entity, entity+" not found")
		coded.Cause = err
		return coded
	case errors.Is(err, storage.ErrAlreadyExists):
		coded := apperrors.WithMetadata(apperrors.CodeAlreadyExists, entity+" already exists", map[string]string{"Entity": entity})
		coded.Cause = err
		return coded
	case errors.Is(err, filter.ErrInvalid):
		return apperrors.Wrap(apperrors.CodeInvalidFilter, err.Error(), err)
	}
	return err
}

// list loads records through a store method expression such as
// storage.Stores.ListCustomers and maps storage errors.
func list[T any](ctx context.Context, s *Service, op, entity string, q storage.ListQuery, fn func(storage.Stores, context.Context, storage.ListQuery) ([]T, error)) ([]T, error) {
	var out []T
	err := s.view(ctx, op, func(st storage.Stores) error {
		records, err := fn(st, ctx, q)
		if err != nil {
			return storageErr(entity, err)
		}
		out = records
		return nil
	})
	return out, err
}

// get loads one record through a store method expression.
func get[T any](ctx context.Context, s *Service, op, entity, recordID string, fn func(storage.Stores, context.Context, string) (T, error)) (T, error) {
	var out T
	err := s.view(ctx, op, func(st storage.Stores) error {
		record, err := fn(st, ctx, recordID)
		if err != nil {
			return storageErr(entity, err)
		}
		out = record
		return nil
	})
	return out, err
}
