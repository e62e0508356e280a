package repos

import (
	"errors"

	"github.com/tauraamui/hubschema/pkg/catalog/models"
	"github.com/tauraamui/xerror"
	"gorm.io/gorm"
)

var ErrDescriptorNotFound = xerror.New("descriptor not found")

type DescriptorRepository struct {
	DB GormWrapper
}

func (r *DescriptorRepository) Create(descriptor *models.Descriptor) error {
	return r.DB.Create(descriptor).Error()
}

func (r *DescriptorRepository) FindByUUID(uuid string) (models.Descriptor, error) {
	descriptor := models.Descriptor{}
	if err := r.DB.Where("uuid = ?", uuid).First(&descriptor).Error(); err != nil {
		return descriptor, notFound(err, "descriptor of uuid %s not found", uuid)
	}

	return descriptor, nil
}

func (r *DescriptorRepository) FindByName(dataset, name string) (models.Descriptor, error) {
	descriptor := models.Descriptor{}
	if err := r.DB.Where("dataset = ? AND name = ?", dataset, name).First(&descriptor).Error(); err != nil {
		return descriptor, notFound(err, "descriptor %s of dataset %s not found", name, dataset)
	}

	return descriptor, nil
}

func (r *DescriptorRepository) FindByDataset(dataset string) ([]models.Descriptor, error) {
	descriptors := []models.Descriptor{}
	if err := r.DB.Where("dataset = ?", dataset).Order("id").Find(&descriptors).Error(); err != nil {
		return nil, xerror.Errorf("unable to list descriptors of dataset %s: %w", dataset, err)
	}

	return descriptors, nil
}

func notFound(err error, format string, a ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return xerror.Errorf("%w: "+format, append([]interface{}{ErrDescriptorNotFound}, a...)...)
	}
	return xerror.Errorf(format+": %w", append(a, err)...)
}
