package courier_test

import (
	"testing"
	"time"

	"fastdelivery/internal/core/domain/model/courier"
	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	now := time.Now()
	c, err := courier.NewCourier(kernel.NewUUID(), "  Carlos  ", "bike", now)
	require.NoError(t, err)

	assert.Equal(t, "Carlos", c.Name())
	assert.Equal(t, "bike", c.Vehicle())
	assert.True(t, c.Available(), "new couriers are available by default")
	assert.Equal(t, now, c.CreatedAt())
}

func TestNewCourier_DefaultVehicle(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Carlos", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "moto", c.Vehicle())
}

func TestNewCourier_NameRequired(t *testing.T) {
	_, err := courier.NewCourier(kernel.NewUUID(), "   ", "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCourier_SetAvailable(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Carlos", "", time.Now())
	require.NoError(t, err)

	c.SetAvailable(false)
	assert.False(t, c.Available())
	c.SetAvailable(true)
	assert.True(t, c.Available())
}

func TestRestoreCourier(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)

	c, err := courier.RestoreCourier(id, "Carlos", "van", false, createdAt)
	require.NoError(t, err)

	assert.True(t, id.IsEqual(c.ID()))
	assert.Equal(t, "van", c.Vehicle())
	assert.False(t, c.Available())
	assert.Equal(t, createdAt, c.CreatedAt())
}

func TestCourier_Validate_NotConstructed(t *testing.T) {
	var c courier.Courier
	require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
}
