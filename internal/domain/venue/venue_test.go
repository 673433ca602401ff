package venue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() CreateVenueParams {
	return CreateVenueParams{
		ID:        "venue-1",
		Name:      "Harbor Loft",
		Price:     1000,
		MaxGuests: 4,
		Rating:    4.5,
		Owner:     "astrid",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestNewVenue_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateVenueParams)
		wantErr error
	}{
		{name: "valid", mutate: func(p *CreateVenueParams) {}},
		{name: "empty name", mutate: func(p *CreateVenueParams) { p.Name = "  " }, wantErr: ErrNameRequired},
		{name: "zero price", mutate: func(p *CreateVenueParams) { p.Price = 0 }, wantErr: ErrInvalidPrice},
		{name: "negative price", mutate: func(p *CreateVenueParams) { p.Price = -10 }, wantErr: ErrInvalidPrice},
		{name: "zero guests", mutate: func(p *CreateVenueParams) { p.MaxGuests = 0 }, wantErr: ErrInvalidGuests},
		{name: "rating above five", mutate: func(p *CreateVenueParams) { p.Rating = 5.5 }, wantErr: ErrRatingRange},
		{name: "rating below zero", mutate: func(p *CreateVenueParams) { p.Rating = -0.5 }, wantErr: ErrRatingRange},
		{name: "rating not half point", mutate: func(p *CreateVenueParams) { p.Rating = 4.3 }, wantErr: ErrRatingRange},
		{name: "half point rating ok", mutate: func(p *CreateVenueParams) { p.Rating = 3.5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			v, err := NewVenue(params)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v)
		})
	}
}

func TestAmenities_Covers(t *testing.T) {
	have := Amenities{Wifi: true, Breakfast: true}

	assert.True(t, have.Covers(Amenities{}))
	assert.True(t, have.Covers(Amenities{Wifi: true}))
	assert.True(t, have.Covers(Amenities{Wifi: true, Breakfast: true}))
	assert.False(t, have.Covers(Amenities{Parking: true}))
	assert.False(t, have.Covers(Amenities{Wifi: true, Pets: true}))
}

func TestVenue_CanHost(t *testing.T) {
	v, err := NewVenue(validParams())
	require.NoError(t, err)

	assert.True(t, v.CanHost(1))
	assert.True(t, v.CanHost(4))
	assert.False(t, v.CanHost(0))
	assert.False(t, v.CanHost(5))
}
