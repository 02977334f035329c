package templating_test

import (
	"strings"
	"testing"

	"github.com/fbenitez/concesionaria_app/internal/utils/templating"
	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesKnownTokens(t *testing.T) {
	template := "Vende a [COMPRADOR_NOMBRE], DNI [COMPRADOR_DNI]."
	values := map[string]string{
		templating.TokenCompradorNombre: "Juan Pérez",
		templating.TokenCompradorDNI:    "28.456.789",
	}

	got := templating.Render(template, values)

	assert.Equal(t, "Vende a Juan Pérez, DNI 28.456.789.", got)
}

func TestRender_UnknownTokenLeftVerbatim(t *testing.T) {
	// A token with no mapping stays visible on the document instead of
	// failing the render.
	template := "Importe: [TOKEN_DESCONOCIDO]"

	got := templating.Render(template, map[string]string{})

	assert.Equal(t, template, got)
}

func TestRender_EmptyValueRemovesToken(t *testing.T) {
	// Scenario: a block token for an absent component resolves to nothing,
	// leaving no stray token behind.
	template := "Precio total. [BLOQUE_USADOS]Saldo."
	values := map[string]string{templating.TokenBloqueUsados: ""}

	got := templating.Render(template, values)

	assert.Equal(t, "Precio total. Saldo.", got)
	assert.NotContains(t, got, "[BLOQUE_USADOS]")
}

func TestRender_SinglePassNoRescan(t *testing.T) {
	// A replacement that happens to contain a token must not be substituted
	// again.
	template := "[COMPRADOR_NOMBRE]"
	values := map[string]string{
		templating.TokenCompradorNombre: "[COMPRADOR_DNI]",
		templating.TokenCompradorDNI:    "should never appear",
	}

	got := templating.Render(template, values)

	assert.Equal(t, "[COMPRADOR_DNI]", got)
}

func TestRender_Idempotent(t *testing.T) {
	template := "El comprador [COMPRADOR_NOMBRE] abona [PRECIO_TOTAL]."
	values := map[string]string{
		templating.TokenCompradorNombre: "María Gómez",
		templating.TokenPrecioTotal:     "$ 1.000.000",
	}

	once := templating.Render(template, values)
	twice := templating.Render(once, values)

	assert.Equal(t, once, twice)
}

func TestRender_CaseSensitive(t *testing.T) {
	template := "[comprador_nombre]"

	got := templating.Render(template, map[string]string{
		templating.TokenCompradorNombre: "Juan",
	})

	// Lowercase is not part of the vocabulary and is not even scanned.
	assert.Equal(t, template, got)
}

func TestRender_GlobalSubstitution(t *testing.T) {
	template := "[COMPRADOR_NOMBRE] ... firma: [COMPRADOR_NOMBRE]"

	got := templating.Render(template, map[string]string{
		templating.TokenCompradorNombre: "Juan Pérez",
	})

	assert.Equal(t, 2, strings.Count(got, "Juan Pérez"))
}

func TestField(t *testing.T) {
	assert.Equal(t, "Juan", templating.Field("Juan"))
	assert.Equal(t, templating.Blank, templating.Field(""))
	assert.Equal(t, templating.Blank, templating.Field("   "))
}
