package utils_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rakhaanw/mindhaven/internal/utils"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[utils.Code]int{
		utils.CodeInvalidArgument: http.StatusBadRequest,
		utils.CodeUnauthorized:    http.StatusUnauthorized,
		utils.CodeForbidden:       http.StatusForbidden,
		utils.CodeNotFound:        http.StatusNotFound,
		utils.CodeConflict:        http.StatusConflict,
		utils.CodeUnavailable:     http.StatusServiceUnavailable,
		utils.CodeInternal:        http.StatusInternalServerError,
	}

	for code, want := range cases {
		err := utils.E(code, "Op", "msg", nil)
		require.Equal(t, want, utils.HTTPStatus(err), "code %s", code)
	}

	require.Equal(t, http.StatusNotFound, utils.HTTPStatus(utils.ErrNotFound))
	require.Equal(t, http.StatusInternalServerError, utils.HTTPStatus(errors.New("plain")))
}

func TestIsCodeUnwraps(t *testing.T) {
	inner := utils.E(utils.CodeNotFound, "Repo.Get", "entry not found", utils.ErrNotFound)
	wrapped := fmt.Errorf("outer: %w", inner)

	require.True(t, utils.IsCode(wrapped, utils.CodeNotFound))
	require.False(t, utils.IsCode(wrapped, utils.CodeConflict))
	require.True(t, errors.Is(wrapped, utils.ErrNotFound))
}
