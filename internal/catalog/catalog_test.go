package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"Deloitte", "Sencinet", "SoftwareONE", "Neosecure", "Stefanini"}, c.Names())

	v, err := c.Vendor("Neosecure")
	require.NoError(t, err)
	require.Len(t, v.Services, 2)
	assert.Equal(t, "Seguridad Gestionada", v.Services[0].Name)
	assert.Equal(t, "Consultoría de Ciberseguridad", v.Services[1].Name)
}

func TestSLALookup(t *testing.T) {
	c := Default()

	sla, err := c.SLA("Deloitte", "Ciberseguridad")
	require.NoError(t, err)
	assert.Equal(t, SLA{Critical: "1.0 horas", High: "3.0 horas", Medium: "6.0 horas", Low: "24.0 horas"}, sla)

	_, err = c.SLA("Acme", "Ciberseguridad")
	assert.ErrorIs(t, err, ErrUnknownVendor)

	_, err = c.SLA("Deloitte", "Conectividad")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestLoadFromYAMLFile(t *testing.T) {
	doc := `
- nombre: Acme
  servicios:
    Soporte:
      sla:
        critica: 30 mins
        alta: 1 hora
        media: 4 horas
        baja: 2 días
    Redes:
      sla:
        critica: 1 hora
`
	path := filepath.Join(t.TempDir(), "vendors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	v, err := c.Vendor("Acme")
	require.NoError(t, err)
	require.Len(t, v.Services, 2)
	assert.Equal(t, "Soporte", v.Services[0].Name)
	assert.Equal(t, "30 mins", v.Services[0].SLA.Critical)
	assert.Equal(t, "2 días", v.Services[0].SLA.Low)
	assert.Equal(t, "", v.Services[1].SLA.Low)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte(`[{"nombre": "A"}, {"nombre": "A"}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"servicios": {}}]`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestVendorsReturnsCopy(t *testing.T) {
	c := Default()
	vs := c.Vendors()
	vs[0].Name = "changed"
	assert.Equal(t, "Deloitte", c.Names()[0])
}
