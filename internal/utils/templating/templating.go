// Package templating substitutes the closed vocabulary of contract
// placeholder tokens in a stored template. The token names are part of the
// compatibility surface with previously stored templates and must not be
// renamed.
package templating

import (
	"regexp"
	"strings"
)

// Date tokens.
const (
	TokenDia         = "[DIA]"
	TokenMes         = "[MES]"
	TokenAnio        = "[ANIO]"
	TokenFecha       = "[FECHA]"
	TokenFechaLetras = "[FECHA_LETRAS]"
)

// Buyer tokens.
const (
	TokenCompradorNombre    = "[COMPRADOR_NOMBRE]"
	TokenCompradorDNI       = "[COMPRADOR_DNI]"
	TokenCompradorCUIT      = "[COMPRADOR_CUIT]"
	TokenCompradorTelefono  = "[COMPRADOR_TELEFONO]"
	TokenCompradorDomicilio = "[COMPRADOR_DOMICILIO]"
)

// Seller tokens.
const (
	TokenVendedorNombre    = "[VENDEDOR_NOMBRE]"
	TokenVendedorDNI       = "[VENDEDOR_DNI]"
	TokenVendedorCUIT      = "[VENDEDOR_CUIT]"
	TokenVendedorTelefono  = "[VENDEDOR_TELEFONO]"
	TokenVendedorDomicilio = "[VENDEDOR_DOMICILIO]"
)

// Vehicle tokens.
const (
	TokenVehiculoMarca        = "[VEHICULO_MARCA]"
	TokenVehiculoModelo       = "[VEHICULO_MODELO]"
	TokenVehiculoAnio         = "[VEHICULO_ANIO]"
	TokenVehiculoPatente      = "[VEHICULO_PATENTE]"
	TokenVehiculoMotorMarca   = "[VEHICULO_MOTOR_MARCA]"
	TokenVehiculoMotorNumero  = "[VEHICULO_MOTOR_NUMERO]"
	TokenVehiculoChasisMarca  = "[VEHICULO_CHASIS_MARCA]"
	TokenVehiculoChasisNumero = "[VEHICULO_CHASIS_NUMERO]"
	TokenVehiculoRadicacion   = "[VEHICULO_RADICACION]"
	TokenVehiculoKilometraje  = "[VEHICULO_KILOMETRAJE]"
)

// Settlement text-block tokens. Each resolves to a fully worded sentence or
// to the empty string depending on whether the matching payment component is
// present; clause visibility is controlled entirely by substitution content,
// never by template branching.
const (
	TokenBloqueSena                = "[BLOQUE_SENA]"
	TokenBloqueContado             = "[BLOQUE_CONTADO]"
	TokenBloqueUsados              = "[BLOQUE_USADOS]"
	TokenBloqueFinanciacion        = "[BLOQUE_FINANCIACION]"
	TokenBloqueSaldo               = "[BLOQUE_SALDO]"
	TokenBloqueGastosTransferencia = "[BLOQUE_GASTOS_TRANSFERENCIA]"
	TokenPrecioTotal               = "[PRECIO_TOTAL]"
	TokenPrecioTotalLetras         = "[PRECIO_TOTAL_LETRAS]"
)

// Blank is the visible run rendered for an absent party or vehicle field so
// an unfilled value is conspicuous on the printed document.
const Blank = "__________"

var tokenPattern = regexp.MustCompile(`\[[A-Z][A-Z0-9_]*\]`)

// Render substitutes every known token in template with its value. The
// substitution is literal, global, case-sensitive and single-pass: a token's
// replacement text is never re-scanned, and a token with no mapping is left
// verbatim so the defect is visible on the rendered document rather than a
// blocking failure.
func Render(template string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		if v, ok := values[token]; ok {
			return v
		}
		return token
	})
}

// Field prepares a party or vehicle value for substitution: a missing value
// becomes a visible blank run, never an empty string.
func Field(v string) string {
	if strings.TrimSpace(v) == "" {
		return Blank
	}
	return v
}
