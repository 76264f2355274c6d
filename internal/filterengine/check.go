package filterengine

import (
	"errors"
	"fmt"
	"slices"

	"qr-menu/internal/model"
)

var (
	ErrUnknownLogic        = errors.New("unknown predicate logic")
	ErrUnknownField        = errors.New("unknown condition field")
	ErrUnsupportedOperator = errors.New("operator not supported for field")
	ErrValueShape          = errors.New("value shape does not fit operator")
)

// ConditionError locates a problem inside a predicate.
type ConditionError struct {
	Index int // -1 for predicate-level problems
	Field model.ConditionField
	Op    model.ConditionOperator
	Err   error
}

func (e *ConditionError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("condition %d (%s %s): %v", e.Index, e.Field, e.Op, e.Err)
}

func (e *ConditionError) Unwrap() error { return e.Err }

// operand lists the value kinds each field/operator pair accepts. A nil slice accepts
// any value (the operand is ignored).
var operand = map[model.ConditionField]map[model.ConditionOperator][]model.ValueKind{
	model.FieldTagIDs: {
		model.OperatorContains: {model.ValueString},
		model.OperatorIn:       {model.ValueString, model.ValueList},
		model.OperatorExists:   nil,
	},
	model.FieldPrice: {
		model.OperatorRange:  {model.ValueRange},
		model.OperatorEquals: {model.ValueNumber},
	},
	model.FieldCategory: {
		model.OperatorEquals: {model.ValueString},
		model.OperatorIn:     {model.ValueString, model.ValueList},
	},
	model.FieldIsVisible: {
		model.OperatorEquals: {model.ValueBool},
	},
	model.FieldName: {
		model.OperatorContains: {model.ValueString},
		model.OperatorEquals:   {model.ValueString},
	},
	model.FieldDescription: {
		model.OperatorContains: {model.ValueString},
		model.OperatorEquals:   {model.ValueString},
	},
}

// CheckPredicate reports the configuration problems of p. Evaluation does not depend on
// it: a predicate that fails the check still evaluates, falling back to false wherever
// it is broken.
func CheckPredicate(p model.FilterPredicate) error {
	var errs []error
	if len(p.Conditions) > 0 && p.Logic != model.LogicAnd && p.Logic != model.LogicOr {
		errs = append(errs, &ConditionError{Index: -1, Err: fmt.Errorf("%w %q", ErrUnknownLogic, p.Logic)})
	}

	for i, c := range p.Conditions {
		if err := checkCondition(c); err != nil {
			errs = append(errs, &ConditionError{Index: i, Field: c.Field, Op: c.Operator, Err: err})
		}
	}
	return errors.Join(errs...)
}

// CheckTagRefs reports tag references in p that resolve to no tag.
func CheckTagRefs(p model.FilterPredicate, tags TagIndex) error {
	var errs []error
	for i, c := range p.Conditions {
		if c.Field != model.FieldTagIDs {
			continue
		}
		for _, ref := range c.Value.Strings() {
			if _, ok := tags.Resolve(ref); !ok {
				errs = append(errs, &ConditionError{
					Index: i, Field: c.Field, Op: c.Operator,
					Err: fmt.Errorf("unknown tag %q", ref),
				})
			}
		}
	}
	return errors.Join(errs...)
}

func checkCondition(c model.FilterCondition) error {
	ops, ok := operand[c.Field]
	if !ok {
		return ErrUnknownField
	}
	kinds, ok := ops[c.Operator]
	if !ok {
		return ErrUnsupportedOperator
	}
	if kinds == nil {
		return nil
	}
	if !slices.Contains(kinds, c.Value.Kind()) {
		return fmt.Errorf("%w: got %s", ErrValueShape, c.Value.Kind())
	}
	if c.Operator == model.OperatorRange {
		if lo, hi := PriceBounds(c.Value); lo > hi {
			return fmt.Errorf("%w: min %v is greater than max %v", ErrValueShape, lo, hi)
		}
	}
	return nil
}
