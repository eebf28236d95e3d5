package check

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	apperrors "inputguard/pkg/errors"
)

// Location is the typed form of a geocode record.
type Location struct {
	Latitude    float64 `json:"latitude" bson:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" bson:"longitude" validate:"required"`
	Country     string  `json:"country" bson:"country"`
	CountryCode string  `json:"countryCode" bson:"countryCode"`
	City        string  `json:"city" bson:"city"`
}

var locationValidate = newLocationValidate()

func newLocationValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// GeoCode checks latitude and longitude and normalizes country, countryCode
// and city in place. record is a string-keyed map, a *Location or a Location;
// maps and pointers are mutated and returned as is, a Location value is
// returned normalized. A slice or array is reported as missing latitude.
func (c *Checker) GeoCode(record any, name string) (any, error) {
	if isFalsy(record) {
		return nil, apperrors.MissingValue("No geoCode provided")
	}

	var err error
	switch r := record.(type) {
	case map[string]any:
		err = c.geoCodeMap(r, name)
	case bson.M:
		err = c.geoCodeMap(map[string]any(r), name)
	case *Location:
		err = c.location(r, name)
	case Location:
		if err = c.location(&r, name); err == nil {
			return r, nil
		}
	default:
		return c.geoCodeOther(record, name)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// geoCodeOther handles any other string-keyed map through a copy, writing the
// normalized fields back where the element type accepts a string. Sequences
// are objects without coordinates.
func (c *Checker) geoCodeOther(record any, name string) (any, error) {
	rv := reflect.ValueOf(record)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return nil, apperrors.MissingField(fmt.Sprintf("%s is missing latitude", name))
	}

	m, ok := asRecord(record)
	if !ok {
		return nil, apperrors.WrongType(fmt.Sprintf("%s is not an object", name))
	}
	if err := c.geoCodeMap(m, name); err != nil {
		return nil, err
	}

	elem := rv.Type().Elem()
	for _, key := range []string{"country", "countryCode", "city"} {
		v := reflect.ValueOf(m[key])
		if !v.Type().AssignableTo(elem) {
			continue
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), v)
	}
	return record, nil
}

func (c *Checker) geoCodeMap(m map[string]any, name string) error {
	latitude, longitude := m["latitude"], m["longitude"]

	if isFalsy(latitude) {
		return apperrors.MissingField(fmt.Sprintf("%s is missing latitude", name))
	}
	if isFalsy(longitude) {
		return apperrors.MissingField(fmt.Sprintf("%s is missing longitude", name))
	}
	if _, ok := asNumber(latitude); !ok {
		return apperrors.WrongType(fmt.Sprintf("%s latitude is not a number", name))
	}
	if _, ok := asNumber(longitude); !ok {
		return apperrors.WrongType(fmt.Sprintf("%s longitude is not a number", name))
	}

	country, err := c.String(m["country"], "country")
	if err != nil {
		return err
	}
	m["country"] = country

	countryCode, err := c.CountryCode(m["countryCode"])
	if err != nil {
		return err
	}
	m["countryCode"] = countryCode

	city, err := c.String(m["city"], "city")
	if err != nil {
		return err
	}
	m["city"] = city
	return nil
}

func (c *Checker) location(l *Location, name string) error {
	if err := locationValidate.Struct(l); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return apperrors.MissingField(fmt.Sprintf("%s is missing %s", name, fieldErrs[0].Field()))
		}
		return apperrors.Internal("geocode validation failed", err)
	}
	// required lets NaN and -0 through
	if isFalsy(l.Latitude) {
		return apperrors.MissingField(fmt.Sprintf("%s is missing latitude", name))
	}
	if isFalsy(l.Longitude) {
		return apperrors.MissingField(fmt.Sprintf("%s is missing longitude", name))
	}

	country, err := c.String(l.Country, "country")
	if err != nil {
		return err
	}
	l.Country = country

	countryCode, err := c.CountryCode(l.CountryCode)
	if err != nil {
		return err
	}
	l.CountryCode = countryCode

	city, err := c.String(l.City, "city")
	if err != nil {
		return err
	}
	l.City = city
	return nil
}
