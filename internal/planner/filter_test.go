package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/testutil"
)

func TestFilter_ExcludesGroupActivities(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("solo", "Para dos"),
		testutil.NewTestActivity("grupo", "Para cuatro", testutil.WithParticipants(4)),
		testutil.NewTestActivity("pareja", "Explícitamente dos", testutil.WithParticipants(2)),
	}

	out := Filter(activities, app.Constraints{})

	ids := activityIDs(out)
	assert.Equal(t, []string{"solo", "pareja"}, ids)
}

func TestFilter_IndoorOnlyExcludesOutdoor(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("caminar", "Caminar", testutil.WithTags("outdoor", "exercise")),
		testutil.NewTestActivity("leer", "Leer", testutil.WithTags("reading")),
		testutil.NewTestActivity("cocinar", "Cocinar", testutil.WithTags("indoor", "cooking")),
	}

	out := Filter(activities, app.Constraints{Location: []domain.LocationConstraint{domain.LocationIndoor}})

	// Untagged activities survive a location constraint.
	assert.Equal(t, []string{"leer", "cocinar"}, activityIDs(out))
}

func TestFilter_BothLocationsExcludeNothing(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("caminar", "Caminar", testutil.WithTags("outdoor")),
		testutil.NewTestActivity("cocinar", "Cocinar", testutil.WithTags("indoor")),
	}

	out := Filter(activities, app.Constraints{
		Location: []domain.LocationConstraint{domain.LocationIndoor, domain.LocationOutdoor},
	})

	assert.Len(t, out, 2)
}

func TestFilter_FreeExcludesPaid(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("gratis", "Gratis"),
		testutil.NewTestActivity("pago", "Pago", testutil.WithCost(12)),
	}

	out := Filter(activities, app.Constraints{Cost: []domain.CostConstraint{domain.CostFree}})
	assert.Equal(t, []string{"gratis"}, activityIDs(out))

	out = Filter(activities, app.Constraints{Cost: []domain.CostConstraint{domain.CostPaid}})
	assert.Equal(t, []string{"pago"}, activityIDs(out))
}

func TestFilter_IntensityList(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("suave", "Suave", testutil.WithIntensity(domain.IntensityLow)),
		testutil.NewTestActivity("media", "Media", testutil.WithIntensity(domain.IntensityMedium)),
		testutil.NewTestActivity("alta", "Alta", testutil.WithIntensity(domain.IntensityHigh)),
	}

	out := Filter(activities, app.Constraints{
		Intensity: []domain.Intensity{domain.IntensityLow, domain.IntensityMedium},
	})

	assert.Equal(t, []string{"suave", "media"}, activityIDs(out))
}

func TestFilter_EmptyResultPropagates(t *testing.T) {
	activities := []domain.Activity{
		testutil.NewTestActivity("pago", "Pago", testutil.WithCost(10)),
	}

	out := Filter(activities, app.Constraints{Cost: []domain.CostConstraint{domain.CostFree}})
	assert.Empty(t, out)
}

func activityIDs(activities []domain.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}
