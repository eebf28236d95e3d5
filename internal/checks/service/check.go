package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"inputguard/internal/checks/validator"
	"inputguard/pkg/check"
	"inputguard/pkg/config"
	apperrors "inputguard/pkg/errors"
	"inputguard/pkg/model"
)

type CheckService interface {
	Check(ctx context.Context, kind string, req *model.CheckRequest) (*model.CheckResult, error)
	CompareSequences(ctx context.Context, req *model.CompareRequest) (*model.CompareResult, error)
	CompareRecords(ctx context.Context, req *model.CompareRequest) (*model.CompareResult, error)
	Stringify(ctx context.Context, extJSON []byte) ([]byte, error)
}

type checkService struct {
	checker   *check.Checker
	validator *validator.RequestValidator
	cfg       *config.Config
}

func NewCheckService(
	checker *check.Checker,
	validator *validator.RequestValidator,
	cfg *config.Config,
) CheckService {
	return &checkService{
		checker:   checker,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *checkService) Check(ctx context.Context, kind string, req *model.CheckRequest) (*model.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !model.IsKind(kind) {
		return nil, apperrors.NotFound("check kind").WithDetails(map[string]any{
			"kind":      kind,
			"supported": model.Kinds,
		})
	}
	if err := s.validator.ValidateCheck(req); err != nil {
		return nil, s.validationFailed(err)
	}

	value, err := s.run(kind, req)
	if err != nil {
		s.cfg.Log.Debug("Check failed",
			"kind", kind,
			"name", req.Name,
			"code", apperrors.AsAppError(err).Code,
		)
		return nil, err
	}

	return &model.CheckResult{Kind: kind, Value: value}, nil
}

func (s *checkService) run(kind string, req *model.CheckRequest) (any, error) {
	c := s.checker
	switch kind {
	case model.KindString:
		return c.String(req.Value, req.Name)
	case model.KindID:
		return c.ID(req.Value, req.Name)
	case model.KindURL:
		return c.URL(req.Value, req.Name)
	case model.KindImageURL:
		return c.ImageURL(req.Value, req.Name)
	case model.KindCountryCode:
		return c.CountryCode(req.Value)
	case model.KindGeoCode:
		return c.GeoCode(req.Value, req.Name)
	case model.KindNumber:
		return c.Number(req.Value, req.Name, check.Bounds{Min: req.Min, Max: req.Max})
	case model.KindStringArray:
		return c.StringSlice(req.Value, req.Name)
	}
	return nil, apperrors.NotFound("check kind")
}

func (s *checkService) CompareSequences(ctx context.Context, req *model.CompareRequest) (*model.CompareResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateCompare(req); err != nil {
		return nil, s.validationFailed(err)
	}
	return &model.CompareResult{Equal: check.SequencesEqual(req.A, req.B)}, nil
}

func (s *checkService) CompareRecords(ctx context.Context, req *model.CompareRequest) (*model.CompareResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateCompare(req); err != nil {
		return nil, s.validationFailed(err)
	}
	return &model.CompareResult{Equal: check.RecordsEqual(req.A, req.B)}, nil
}

// Stringify decodes a MongoDB Extended JSON document or array of documents,
// renders every "_id" handle as text and returns relaxed Extended JSON.
func (s *checkService) Stringify(ctx context.Context, extJSON []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := DecodeExtJSON(extJSON)
	if err != nil {
		return nil, err
	}

	var out any
	if docs, ok := value.(bson.A); ok {
		out = s.checker.StringifyIDs(docs)
	} else {
		out = s.checker.StringifyID(value)
	}

	data, err := EncodeExtJSON(out)
	if err != nil {
		return nil, apperrors.Internal("Failed to encode documents", err)
	}
	return data, nil
}

func (s *checkService) validationFailed(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		s.cfg.Log.Debug("Request rejected", "error", err)
		return apperrors.InvalidInput("Request validation failed").WithDetails(verrs.Details())
	}
	return apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("Request validation failed: %v", err), http.StatusBadRequest)
}
