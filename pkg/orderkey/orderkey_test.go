package orderkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/pkg/orderkey"
)

// Caso 1: sin límites → clave del centro del espacio.
func TestBetween_SinLimites(t *testing.T) {
	key, err := orderkey.Between("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, key)
}

// Caso 2: solo límite inferior → la clave debe ser mayor.
func TestBetween_SoloInferior(t *testing.T) {
	base, err := orderkey.Between("", "")
	require.NoError(t, err)

	key, err := orderkey.Between(base, "")
	require.NoError(t, err)
	assert.Negative(t, orderkey.Compare(base, key),
		"la clave generada debe ser mayor que el límite inferior")
}

// Caso 3: solo límite superior → la clave debe ser menor.
func TestBetween_SoloSuperior(t *testing.T) {
	base, err := orderkey.Between("", "")
	require.NoError(t, err)

	key, err := orderkey.Between("", base)
	require.NoError(t, err)
	assert.Negative(t, orderkey.Compare(key, base),
		"la clave generada debe ser menor que el límite superior")
}

// Caso 4: ambos límites → estrictamente en medio.
func TestBetween_AmbosLimites(t *testing.T) {
	lo, err := orderkey.Between("", "")
	require.NoError(t, err)
	hi, err := orderkey.Between(lo, "")
	require.NoError(t, err)

	mid, err := orderkey.Between(lo, hi)
	require.NoError(t, err)
	assert.Negative(t, orderkey.Compare(lo, mid))
	assert.Negative(t, orderkey.Compare(mid, hi))
}

// Caso 5: 50 inserciones consecutivas entre los mismos vecinos no agotan el
// espacio de claves (cada punto medio admite otro punto medio).
func TestBetween_InsercionesRepetidas(t *testing.T) {
	lo, err := orderkey.Between("", "")
	require.NoError(t, err)
	hi, err := orderkey.Between(lo, "")
	require.NoError(t, err)

	upper := hi
	for i := 0; i < 50; i++ {
		mid, err := orderkey.Between(lo, upper)
		require.NoError(t, err, "inserción %d", i)
		require.Negative(t, orderkey.Compare(lo, mid), "inserción %d: mid <= lo", i)
		require.Negative(t, orderkey.Compare(mid, upper), "inserción %d: mid >= upper", i)
		upper = mid
	}
}

// Caso 5b: también apilando hacia arriba (siempre al final de la lista).
func TestBetween_AppendRepetido(t *testing.T) {
	last := ""
	for i := 0; i < 50; i++ {
		key, err := orderkey.Between(last, "")
		require.NoError(t, err)
		if last != "" {
			require.Negative(t, orderkey.Compare(last, key), "iteración %d", i)
		}
		last = key
	}
}

// Caso 6: límites fuera de orden o con dígitos inválidos → error.
func TestBetween_LimitesInvalidos(t *testing.T) {
	_, err := orderkey.Between("V", "G")
	assert.Error(t, err, "límites invertidos deben rechazarse")

	_, err = orderkey.Between("V", "V")
	assert.Error(t, err, "límites iguales deben rechazarse")

	_, err = orderkey.Between("con espacio", "")
	assert.Error(t, err, "dígitos fuera del alfabeto deben rechazarse")
}

// Compare es comparación lexicográfica byte a byte, sin parseo numérico.
func TestCompare(t *testing.T) {
	assert.Equal(t, 0, orderkey.Compare("GG", "GG"))
	assert.Equal(t, -1, orderkey.Compare("G", "GG"))
	assert.Equal(t, 1, orderkey.Compare("a", "Z"), "minúsculas ordenan después de mayúsculas en ASCII")
	assert.Equal(t, -1, orderkey.Compare("9", "A"))
}
