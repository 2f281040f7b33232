// Package seed loads the catalog's sample products at startup.
package seed

import (
	"catalog_service/internal/domain"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const LoadedMessage = "Sample data has been loaded!"

// ProductSaver is the single persistence operation the loader needs.
type ProductSaver interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
}

type sampleProduct struct {
	name        string
	description string
	price       float64
}

var sampleProducts = [...]sampleProduct{
	{"Laptop", "Dell XPS 13", 1299.99},
	{"Smartphone", "Samsung Galaxy S21", 799.99},
	{"Headphones", "Sony WH-1000XM4", 349.99},
	{"Smartwatch", "Apple Watch Series 7", 399.99},
}

// SampleProducts returns fresh, unsaved copies of the sample records in load order.
func SampleProducts() []domain.Product {
	products := make([]domain.Product, 0, len(sampleProducts))
	for _, s := range sampleProducts {
		products = append(products, domain.Product{
			Name:        s.name,
			Description: s.description,
			Price:       s.price,
		})
	}
	return products
}

type SampleDataLoader struct {
	saver ProductSaver
	log   *logrus.Logger
	out   io.Writer
}

func NewSampleDataLoader(saver ProductSaver, logger *logrus.Logger, out io.Writer) *SampleDataLoader {
	return &SampleDataLoader{
		saver: saver,
		log:   logger,
		out:   out,
	}
}

// Run saves every sample product in order and stops at the first failure.
// Nothing is retried or rolled back, and running it again inserts the
// records again. args are accepted for the startup hook signature and ignored.
func (l *SampleDataLoader) Run(args ...string) error {
	for _, product := range SampleProducts() {
		if _, err := l.saver.CreateProduct(&product); err != nil {
			l.log.Errorf("Seed: Failed to save sample product '%s': %v", product.Name, err)
			return errors.Wrapf(err, "seed sample product %q", product.Name)
		}
		l.log.Debugf("Seed: Saved sample product '%s' with ID %d", product.Name, product.ID)
	}

	if _, err := fmt.Fprintln(l.out, LoadedMessage); err != nil {
		return errors.Wrap(err, "write seed confirmation")
	}
	l.log.Infof("Seed: %d sample products loaded", len(sampleProducts))
	return nil
}
