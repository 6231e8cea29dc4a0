package promotion

import (
	"strings"

	"flightdeals/internal/pkg/errs"
)

var (
	ErrInvalidRoute       = errs.NewValidation("route requires both origin and destination")
	ErrInvalidDiscount    = errs.NewValidation("discount must be between 0 and 100")
	ErrInvalidTripType    = errs.NewValidation("invalid trip type")
	ErrInvalidTravelClass = errs.NewValidation("invalid travel class")
	ErrInvalidAirline     = errs.NewValidation("airline is required")
	ErrInvalidLink        = errs.NewValidation("booking link must be an http(s) URL")
)

type TripType string

const (
	TripRoundTrip  TripType = "round_trip"
	TripOneWay     TripType = "one_way"
	TripReturnOnly TripType = "return_only"
)

var TripTypes = []TripType{TripRoundTrip, TripOneWay, TripReturnOnly}

func NewTripType(s string) (TripType, error) {
	t := TripType(strings.TrimSpace(s))
	for _, v := range TripTypes {
		if v == t {
			return t, nil
		}
	}
	return "", ErrInvalidTripType
}

func (t TripType) String() string { return string(t) }

type TravelClass string

const (
	ClassEconomy        TravelClass = "economy"
	ClassPremiumEconomy TravelClass = "premium_economy"
	ClassBusiness       TravelClass = "business"
	ClassFirst          TravelClass = "first_class"
)

var TravelClasses = []TravelClass{ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst}

func NewTravelClass(s string) (TravelClass, error) {
	c := TravelClass(strings.TrimSpace(s))
	for _, v := range TravelClasses {
		if v == c {
			return c, nil
		}
	}
	return "", ErrInvalidTravelClass
}

func (c TravelClass) String() string { return string(c) }

type Route struct {
	from string
	to   string
}

func NewRoute(from, to string) (Route, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return Route{}, ErrInvalidRoute
	}
	return Route{from: from, to: to}, nil
}

func (r Route) From() string { return r.from }
func (r Route) To() string   { return r.to }

// Discount is a whole percentage, 0-100 inclusive.
type Discount struct {
	value int
}

func NewDiscount(v int) (Discount, error) {
	if v < 0 || v > 100 {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{value: v}, nil
}

func (d Discount) Value() int { return d.value }

func validateLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", nil
	}
	if !strings.HasPrefix(link, "https://") && !strings.HasPrefix(link, "http://") {
		return "", ErrInvalidLink
	}
	return link, nil
}
