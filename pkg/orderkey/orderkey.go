// Package orderkey genera claves de orden fraccionales para ordenar hermanos
// en la guía de precios sin renumerar la lista completa.
//
// Las claves son strings opacos sobre un alfabeto base-62 cuyo orden
// lexicográfico byte a byte ES el orden de los hermanos. Para insertar entre
// dos claves existentes se calcula el punto medio dígito a dígito; una clave
// nunca termina en el dígito más bajo ('0'), de modo que siempre existe un
// punto medio entre dos claves distintas.
//
// Los demás componentes nunca construyen claves a mano: solo vía Between.
package orderkey

import (
	"fmt"
	"strings"
)

// digits alfabeto ordenado por valor ASCII ('0' < '9' < 'A' < 'Z' < 'a' < 'z').
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Between genera una clave estrictamente entre before y after.
// Cadena vacía significa extremo abierto: Between("", "") devuelve una clave
// del centro del espacio; Between(k, "") una clave mayor que k;
// Between("", k) una clave menor que k.
func Between(before, after string) (string, error) {
	if err := validate(before); err != nil {
		return "", fmt.Errorf("orderkey: límite inferior: %w", err)
	}
	if err := validate(after); err != nil {
		return "", fmt.Errorf("orderkey: límite superior: %w", err)
	}
	if before != "" && after != "" && before >= after {
		return "", fmt.Errorf("orderkey: límites fuera de orden: %q >= %q", before, after)
	}
	return midpoint(before, after), nil
}

// Compare compara dos claves byte a byte. Devuelve -1, 0 o 1.
// Este ES el orden de los hermanos; los empates los rompe el caller por ID.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// validate verifica que la clave use solo el alfabeto y no termine en '0'.
func validate(key string) error {
	for i := 0; i < len(key); i++ {
		if strings.IndexByte(digits, key[i]) < 0 {
			return fmt.Errorf("dígito inválido %q en %q", key[i], key)
		}
	}
	if key != "" && key[len(key)-1] == digits[0] {
		return fmt.Errorf("la clave %q termina en el dígito más bajo", key)
	}
	return nil
}

// midpoint calcula una clave entre a y b (precondición: a < b, o extremos vacíos).
// Invariante: el resultado nunca termina en digits[0], por lo que siempre
// admite un nuevo punto medio a su izquierda.
func midpoint(a, b string) string {
	if b != "" {
		// Prefijo común: los dígitos faltantes de a cuentan como el más bajo.
		n := 0
		for n < len(b) && digitAt(a, n) == b[n] {
			n++
		}
		if n > 0 {
			return b[:n] + midpoint(tail(a, n), b[n:])
		}
	}

	da := 0
	if a != "" {
		da = strings.IndexByte(digits, a[0])
	}
	db := len(digits)
	if b != "" {
		db = strings.IndexByte(digits, b[0])
	}

	if db-da > 1 {
		return string(digits[(da+db+1)/2])
	}

	// Dígitos consecutivos: no hay punto medio en esta posición.
	if len(b) > 1 {
		// b tiene más dígitos: su primer dígito solo ya queda entre a y b.
		return b[:1]
	}
	// Extender por la derecha de a con el punto medio del espacio abierto.
	return string(digits[da]) + midpoint(tail(a, 1), "")
}

func digitAt(key string, i int) byte {
	if i < len(key) {
		return key[i]
	}
	return digits[0]
}

func tail(key string, n int) string {
	if n < len(key) {
		return key[n:]
	}
	return ""
}
