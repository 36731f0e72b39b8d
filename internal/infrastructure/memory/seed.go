package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sample-api/internal/domain/entity"
)

// Semillas del fixture. Son los mismos registros que el agente de pruebas
// espera encontrar al arrancar el servicio; los tests también las usan para
// restaurar un estado conocido vía Reset.

// SeedUsers devuelve los usuarios iniciales.
func SeedUsers() []*entity.User {
	return []*entity.User{
		{ID: 1, Username: "john_doe", Email: "john@example.com", Active: true},
		{ID: 2, Username: "jane_smith", Email: "jane@example.com", Active: true},
		{ID: 3, Username: "bob_johnson", Email: "bob@example.com", Active: false},
	}
}

// SeedProducts devuelve el catálogo inicial.
func SeedProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 50},
		{ID: 2, Name: "Smartphone", Price: decimal.NewFromFloat(499.99), Stock: 100},
		{ID: 3, Name: "Headphones", Price: decimal.NewFromFloat(79.99), Stock: 200},
	}
}
