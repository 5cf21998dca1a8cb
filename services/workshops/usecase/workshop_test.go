package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/workshops/mocks"
)

func floatPtr(f float64) *float64 { return &f }

// withGeohash derives the geohash the adapter would have set on load
func withGeohash(w models.Workshop) models.Workshop {
	if w.Latitude != nil && w.Longitude != nil {
		w.Geohash = utils.EncodeGeoPoint(utils.GeoPoint{Latitude: *w.Latitude, Longitude: *w.Longitude})
	}
	return w
}

func seededWorkshop() models.Workshop {
	return models.Workshop{
		ID:      "w-1",
		OwnerID: "u-1",
		Name:    "El Nasr Auto",
		Address: "12 Ramses St, Cairo",
		Phones: []models.PhoneNumber{
			{Number: "+201001234567", Type: "mobile", Primary: true},
		},
		Operating: models.OperatingOpen,
		Approval:  models.ApprovalActive,
		Services:  []string{"oil-change"},
		Labels:    []string{},
	}
}

func TestCreateWorkshop_PromotesFirstPhoneToPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockWorkshopGW(ctrl)
	uc := NewWorkshopUC(gw)

	created := seededWorkshop()

	gw.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.Workshop) (models.Workshop, error) {
			require.Len(t, in.Phones, 2)
			assert.True(t, in.Phones[0].Primary)
			assert.False(t, in.Phones[1].Primary)
			return created, nil
		})
	gw.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(collection.Page[models.Workshop]{Items: []models.Workshop{created}, Total: 1}, nil)

	input := seededWorkshop()
	input.ID = ""
	input.Phones = []models.PhoneNumber{
		{Number: "0100000000", Type: "mobile"},
		{Number: "0227777777", Type: "landline"},
	}

	_, err := uc.CreateWorkshop(context.Background(), input)
	require.NoError(t, err)
}

func TestCreateWorkshop_RequiresAtLeastOnePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWorkshopUC(mocks.NewMockWorkshopGW(ctrl))

	input := seededWorkshop()
	input.ID = ""
	input.Phones = nil

	_, err := uc.CreateWorkshop(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
	e, _ := apierr.AsError(err)
	assert.Contains(t, e.Fields, "phone_numbers")
}

func TestCreateWorkshop_RejectsTwoPrimaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWorkshopUC(mocks.NewMockWorkshopGW(ctrl))

	input := seededWorkshop()
	input.ID = ""
	input.Phones = []models.PhoneNumber{
		{Number: "0100000000", Primary: true},
		{Number: "0111111111", Primary: true},
	}

	_, err := uc.CreateWorkshop(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestUpdateWorkshop_IllegalApprovalTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockWorkshopGW(ctrl)
	uc := NewWorkshopUC(gw)

	current := seededWorkshop()
	current.Approval = models.ApprovalDeactivated
	gw.EXPECT().Get(gomock.Any(), "w-1").Return(current, nil)

	input := current
	input.Approval = models.ApprovalPending

	_, err := uc.UpdateWorkshop(context.Background(), "w-1", input)

	require.Error(t, err)
	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}

func TestUpdateWorkshop_ApprovalChangeGoesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockWorkshopGW(ctrl)
	uc := NewWorkshopUC(gw)

	current := seededWorkshop()
	current.Approval = models.ApprovalPending
	gw.EXPECT().Get(gomock.Any(), "w-1").Return(current, nil)

	updated := current
	updated.Approval = models.ApprovalActive
	gw.EXPECT().
		Update(gomock.Any(), "w-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch map[string]interface{}) (models.Workshop, error) {
			assert.Equal(t, "active", patch["approval_status"])
			assert.Equal(t, "w-1", patch["id"])
			return updated, nil
		})

	input := current
	input.Approval = models.ApprovalActive

	got, err := uc.UpdateWorkshop(context.Background(), "w-1", input)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalActive, got.Approval)
}

func TestNearbyWorkshops_FiltersAndSortsByDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockWorkshopGW(ctrl)
	uc := NewWorkshopUC(gw)

	// downtown Cairo center; one workshop ~1km away, one ~2km, one in Giza
	// (~8km), one with no coordinates
	near := seededWorkshop()
	near.ID = "w-near"
	near.Latitude = floatPtr(30.0450)
	near.Longitude = floatPtr(31.2450)

	mid := seededWorkshop()
	mid.ID = "w-mid"
	mid.Latitude = floatPtr(30.0600)
	mid.Longitude = floatPtr(31.2500)

	far := seededWorkshop()
	far.ID = "w-far"
	far.Latitude = floatPtr(29.9870)
	far.Longitude = floatPtr(31.2118)

	unplaced := seededWorkshop()
	unplaced.ID = "w-unplaced"

	gw.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(collection.Page[models.Workshop]{
			Items: []models.Workshop{withGeohash(far), withGeohash(mid), withGeohash(near), unplaced},
			Total: 4,
		}, nil)

	found, err := uc.NearbyWorkshops(context.Background(), 30.0444, 31.2357, 3)

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "w-near", found[0].ID)
	assert.Equal(t, "w-mid", found[1].ID)
}

func TestNearbyWorkshops_RejectsNonPositiveRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWorkshopUC(mocks.NewMockWorkshopGW(ctrl))

	_, err := uc.NearbyWorkshops(context.Background(), 30.0, 31.0, 0)

	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestAdjustServicePrices_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockWorkshopGW(ctrl)
	uc := NewWorkshopUC(gw)

	gw.EXPECT().AdjustPrices(gomock.Any(), "w-1", 10.0).Return(nil)
	gw.EXPECT().AdjustPrices(gomock.Any(), "w-2", 10.0).
		Return(apierr.Upstream(409, "price lock held"))

	err := uc.AdjustServicePrices(context.Background(), []string{"w-1", "w-2"}, 10)

	require.Error(t, err)
	assert.Equal(t, apierr.KindPartial, apierr.KindOf(err))
	e, _ := apierr.AsError(err)
	assert.Contains(t, e.Failed, "w-2")
	assert.NotContains(t, e.Failed, "w-1")
}

func TestAdjustServicePrices_BoundsPercent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWorkshopUC(mocks.NewMockWorkshopGW(ctrl))

	err := uc.AdjustServicePrices(context.Background(), []string{"w-1"}, -95)

	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestAdjustServicePrices_NothingSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWorkshopUC(mocks.NewMockWorkshopGW(ctrl))

	err := uc.AdjustServicePrices(context.Background(), nil, 10)

	require.Error(t, err)
	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}
