package catalog

import (
	"reflect"
	"time"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/internal/fieldmap"
)

// ToStoreRow renders a product in the store's naming convention, the
// shape used by the bulk export/import surface.
func ToStoreRow(p *domain.Product) (map[string]interface{}, error) {
	data, err := jsoniter.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "encode product")
	}
	var row map[string]interface{}
	if err := jsoniter.Unmarshal(data, &row); err != nil {
		return nil, errors.Wrap(err, "decode product")
	}
	return fieldmap.ProductTable.ToStore(row).(map[string]interface{}), nil
}

// FromStoreRow parses a store-convention row into a Product. Dates are
// accepted in any reasonable format; numeric fields tolerate string
// input the way loosely-typed exports produce them.
func FromStoreRow(row map[string]interface{}) (*domain.Product, error) {
	appRow, ok := fieldmap.ProductTable.ToApp(row).(map[string]interface{})
	if !ok {
		return nil, errors.New("row is not an object")
	}

	var p domain.Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       flexibleTimeHook,
		Result:           &p,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build row decoder")
	}
	if err := dec.Decode(appRow); err != nil {
		return nil, errors.Wrap(err, "decode row")
	}
	return &p, nil
}

// flexibleTimeHook lets mapstructure fill time.Time fields from any
// parseable date string.
func flexibleTimeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	s := data.(string)
	if s == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}
