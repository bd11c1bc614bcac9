package fakers

import (
	"math"
	"math/rand"

	"shopkart/app/models"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

var demoCategories = []string{"Electronics", "Clothing", "Books", "Home & Kitchen", "Toys"}

var demoImages = []string{
	"/static/images/placeholder1.jpg",
	"/static/images/placeholder2.jpg",
	"/static/images/placeholder3.jpg",
}

func ProductFaker() *models.Product {
	return &models.Product{
		Name:        faker.Name(),
		Category:    demoCategories[rand.Intn(len(demoCategories))],
		Price:       decimal.NewFromFloat(fakePrice()),
		Image:       demoImages[rand.Intn(len(demoImages))],
		Description: faker.Paragraph(),
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
