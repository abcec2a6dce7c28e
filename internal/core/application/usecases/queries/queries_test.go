package queries_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/queries"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnassignedDeliveriesQuery(t *testing.T) {
	query := queries.NewGetUnassignedDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetUnassignedDeliveriesQuery_ZeroValueIsInvalid(t *testing.T) {
	var query queries.GetUnassignedDeliveriesQuery
	require.Error(t, query.Validate())
}

func TestNewGetPartyOrdersQuery_ValidInput(t *testing.T) {
	partyID := kernel.NewUUID()
	query, err := queries.NewGetPartyOrdersQuery(partyID, user.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, partyID, query.PartyID())
	assert.Equal(t, user.RoleVendor, query.Role())
}

func TestNewGetPartyOrdersQuery_InvalidPartyID(t *testing.T) {
	_, err := queries.NewGetPartyOrdersQuery(kernel.UUID{}, user.RoleBuyer)
	require.Error(t, err)
}

func TestNewGetPartyOrdersQuery_UnknownRole(t *testing.T) {
	_, err := queries.NewGetPartyOrdersQuery(kernel.NewUUID(), user.RoleUnknown)
	require.Error(t, err)
}

func TestNewAuthenticateQuery_ValidInput(t *testing.T) {
	query, err := queries.NewAuthenticateQuery("amelia@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "amelia@example.com", query.Email())
	assert.Equal(t, "s3cret-pass", query.Password())
}

func TestNewAuthenticateQuery_MissingFields(t *testing.T) {
	_, err := queries.NewAuthenticateQuery("", "s3cret-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewAuthenticateQuery("amelia@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
