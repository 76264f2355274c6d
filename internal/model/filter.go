package model

import "time"

// FilterKeyAll is the implicit "show everything" filter key.
const FilterKeyAll = "all"

// FilterType classifies a filter for the admin dashboard.
type FilterType string

const (
	FilterTypeTag          FilterType = "tag"
	FilterTypePriceRange   FilterType = "price_range"
	FilterTypeCategory     FilterType = "category"
	FilterTypeAvailability FilterType = "availability"
	FilterTypeCustom       FilterType = "custom"
)

// Valid reports whether t is a known filter type.
func (t FilterType) Valid() bool {
	switch t {
	case FilterTypeTag, FilterTypePriceRange, FilterTypeCategory, FilterTypeAvailability, FilterTypeCustom:
		return true
	}
	return false
}

// ConditionField is the item field a condition inspects.
type ConditionField string

const (
	FieldTagIDs      ConditionField = "tagIds"
	FieldPrice       ConditionField = "price"
	FieldCategory    ConditionField = "category"
	FieldIsVisible   ConditionField = "isVisible"
	FieldName        ConditionField = "name"
	FieldDescription ConditionField = "description"
)

// ConditionOperator is the test applied to the field.
type ConditionOperator string

const (
	OperatorContains ConditionOperator = "contains"
	OperatorIn       ConditionOperator = "in"
	OperatorExists   ConditionOperator = "exists"
	OperatorRange    ConditionOperator = "range"
	OperatorEquals   ConditionOperator = "equals"
)

// PredicateLogic combines condition results.
type PredicateLogic string

const (
	LogicAnd PredicateLogic = "AND"
	LogicOr  PredicateLogic = "OR"
)

// FilterCondition is one atomic field/operator/value test.
type FilterCondition struct {
	Field    ConditionField    `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    Value             `json:"value"`
}

// FilterPredicate combines conditions with Logic. No conditions matches everything.
type FilterPredicate struct {
	Conditions []FilterCondition `json:"conditions"`
	Logic      PredicateLogic    `json:"logic"`
}

// Filter is the admin-defined, customer-selectable named predicate.
type Filter struct {
	ID          string          `json:"id"`
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	Type        FilterType      `json:"type"`
	Predicate   FilterPredicate `json:"predicate"`
	IsActive    bool            `json:"isActive"`
	Order       int             `json:"sortOrder"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
