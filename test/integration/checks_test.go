package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inputguard/pkg/errors"
	"inputguard/pkg/model"
	"inputguard/test/common"
)

func TestChecks_EndToEnd(t *testing.T) {
	suite := common.NewIntegrationTestSuite(t, "checks")
	ctx := context.Background()

	tests := []struct {
		name       string
		kind       string
		req        *model.CheckRequest
		want       any
		wantCode   string
		wantStatus int
	}{
		{
			name: "string",
			kind: model.KindString,
			req:  &model.CheckRequest{Name: "title", Value: "  Haircut "},
			want: "Haircut",
		},
		{
			name: "image url",
			kind: model.KindImageURL,
			req:  &model.CheckRequest{Name: "logo", Value: "https://cdn.example.com/logo.png"},
			want: "https://cdn.example.com/logo.png",
		},
		{
			name:       "unsupported protocol",
			kind:       model.KindURL,
			req:        &model.CheckRequest{Name: "site", Value: "ftp://example.com"},
			wantCode:   apperrors.CodeUnsupportedProtocol,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "number",
			kind: model.KindNumber,
			req:  &model.CheckRequest{Name: "priority", Value: 7, Min: ptr(1), Max: ptr(10)},
			want: float64(7),
		},
		{
			name:       "number too small",
			kind:       model.KindNumber,
			req:        &model.CheckRequest{Name: "priority", Value: -3, Min: ptr(1)},
			wantCode:   apperrors.CodeTooSmall,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "string array",
			kind: model.KindStringArray,
			req:  &model.CheckRequest{Name: "labels", Value: []string{" a ", "b"}},
			want: []any{"a", "b"},
		},
		{
			name:       "unknown kind",
			kind:       "phone",
			req:        &model.CheckRequest{Name: "x", Value: "x"},
			wantCode:   apperrors.CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := suite.Client.Check(ctx, tt.kind, tt.req)
			if tt.wantCode != "" {
				require.Error(t, err)
				appErr := apperrors.AsAppError(err)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestCompare_EndToEnd(t *testing.T) {
	suite := common.NewIntegrationTestSuite(t, "checks")
	ctx := context.Background()

	equal, err := suite.Client.CompareSequences(ctx, []any{3, 1, 2}, []any{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = suite.Client.CompareRecords(ctx, map[string]any{"a": 1}, map[string]any{"a": 2})
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = suite.Client.CompareRecords(ctx, map[string]any{"a": 1}, nil)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}

func TestStringify_EndToEnd(t *testing.T) {
	suite := common.NewIntegrationTestSuite(t, "checks")

	out, err := suite.Client.Stringify(context.Background(),
		[]byte(`{"_id":{"$oid":"507f1f77bcf86cd799439011"},"tags":[{"_id":{"$oid":"507f191e810c19729de860ea"}}]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"507f1f77bcf86cd799439011","tags":[{"_id":"507f191e810c19729de860ea"}]}`, string(out))
}

func ptr(f float64) *float64 {
	return &f
}
