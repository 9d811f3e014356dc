package seed

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "seed/a_people.yaml", []byte(`
users:
  - username: admin
    password: change-me-now
    is_staff: true
pilots:
  - first_name: Ana
    last_name: Petrova
    year_of_birth: 1985
    total_hours: 1200
    role: Captain
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "seed/nested/b_fleet.yml", []byte(`
balloons:
  - type: Large
    manufacturer_name: Cameron
    max_passengers: 12
airways:
  - name: Balkan Air
    year_founded: 1999
    coverage_eu: true
affiliations:
  - pilot: Ana Petrova
    airways: Balkan Air
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "seed/README.md", []byte("not yaml: ["), 0o644))

	data, err := LoadDir(fs, "seed")
	require.NoError(t, err)

	require.Len(t, data.Users, 1)
	assert.True(t, data.Users[0].IsStaff)
	require.Len(t, data.Pilots, 1)
	assert.Equal(t, 1200, data.Pilots[0].TotalHours)
	require.Len(t, data.Balloons, 1)
	assert.Equal(t, "Cameron", data.Balloons[0].ManufacturerName)
	require.Len(t, data.Airways, 1)
	assert.True(t, data.Airways[0].CoverageEU)
	assert.Equal(t, []AffiliationData{{Pilot: "Ana Petrova", Airways: "Balkan Air"}}, data.Affiliations)
}

func TestLoadDirErrors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "seed/bad.yaml", []byte("pilots: [first_name"), 0o644))

		_, err := LoadDir(fs, "seed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.yaml")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadDir(afero.NewMemMapFs(), "nowhere")
		assert.Error(t, err)
	})
}
