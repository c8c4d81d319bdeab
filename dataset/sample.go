package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SourceSample is the source descriptor for the built-in generator.
const SourceSample = "sample"

// Sample column names.
const (
	ColDate     = "Date"
	ColSales    = "Sales"
	ColCusts    = "Customers"
	ColCategory = "Product_Category"
)

// DateLayout is the format of the generated Date column.
const DateLayout = "2006-01-02"

var sampleCategories = []string{"Electronics", "Clothing", "Books", "Food"}

var sampleStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// LoadSample generates the built-in sample dataset: daily observations
// starting 2024-01-01 with normally distributed sales carrying a seasonal
// sine component, Poisson-distributed customer counts, and a categorical
// product column. Deterministic for a given seed.
func LoadSample(seed int64, rows int) *Dataset {
	if rows < 0 {
		rows = 0
	}
	rng := rand.New(rand.NewSource(seed))

	dates := make([]string, rows)
	sales := make([]float64, rows)
	customers := make([]int, rows)
	categories := make([]string, rows)

	for i := 0; i < rows; i++ {
		dates[i] = sampleStart.AddDate(0, 0, i).Format(DateLayout)
		sales[i] = rng.NormFloat64()*200 + 1000 + math.Sin(float64(i)*0.1)*100
		customers[i] = poisson(rng, 50)
		categories[i] = sampleCategories[rng.Intn(len(sampleCategories))]
	}

	df := dataframe.New(
		series.New(dates, series.String, ColDate),
		series.New(sales, series.Float, ColSales),
		series.New(customers, series.Int, ColCusts),
		series.New(categories, series.String, ColCategory),
	)

	return &Dataset{df: df, source: SourceSample}
}

// poisson draws from a Poisson distribution using Knuth's method.
// Fine for moderate lambda; exp(-lambda) stays representable well past
// the lambda=50 used by the sample generator.
func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
