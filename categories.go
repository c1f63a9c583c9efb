package grana

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// CategoryScope selects which registry list a category operation targets.
type CategoryScope string

const (
	ExpenseScope CategoryScope = "expense"
	IncomeScope  CategoryScope = "income"
	PayerScope   CategoryScope = "payer"
)

// ParseCategoryScope parses a string into a CategoryScope.
func ParseCategoryScope(s string) (CategoryScope, error) {
	switch CategoryScope(strings.ToLower(strings.TrimSpace(s))) {
	case ExpenseScope:
		return ExpenseScope, nil
	case IncomeScope:
		return IncomeScope, nil
	case PayerScope:
		return PayerScope, nil
	default:
		return "", fmt.Errorf("unknown category scope: %q", s)
	}
}

// Presentation fallbacks for names absent from the color/icon maps.
const (
	DefaultColor = "#94a3b8"
	DefaultIcon  = "tag"
)

// UserCategories is the registry of category and payer names, plus the
// presentation metadata keyed by name. The maps are advisory: a name missing
// from them falls back to the defaults instead of failing.
type UserCategories struct {
	Expense []string
	Income  []string
	Payers  []string
	Colors  map[string]string
	Icons   map[string]string
}

// NewUserCategories creates an empty registry with allocated maps.
func NewUserCategories() UserCategories {
	return UserCategories{
		Colors: make(map[string]string),
		Icons:  make(map[string]string),
	}
}

// ColorOf returns the color registered for a name, or DefaultColor.
func (u UserCategories) ColorOf(name string) string {
	if c, ok := u.Colors[name]; ok && c != "" {
		return c
	}
	return DefaultColor
}

// IconOf returns the icon registered for a name, or DefaultIcon.
func (u UserCategories) IconOf(name string) string {
	if i, ok := u.Icons[name]; ok && i != "" {
		return i
	}
	return DefaultIcon
}

// HasPayer reports whether name is a registered payer.
func (u UserCategories) HasPayer(name string) bool {
	return slices.Contains(u.Payers, name)
}

// names returns the list backing a scope.
func (u UserCategories) names(scope CategoryScope) []string {
	switch scope {
	case ExpenseScope:
		return u.Expense
	case IncomeScope:
		return u.Income
	case PayerScope:
		return u.Payers
	default:
		return nil
	}
}

// upsert registers name under scope, recording color and icon when provided.
// Re-registering an existing name only refreshes its metadata.
func (u *UserCategories) upsert(scope CategoryScope, name, color, icon string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, err := ParseCategoryScope(string(scope)); err != nil {
		return err
	}
	if !slices.Contains(u.names(scope), name) {
		switch scope {
		case ExpenseScope:
			u.Expense = append(u.Expense, name)
		case IncomeScope:
			u.Income = append(u.Income, name)
		case PayerScope:
			u.Payers = append(u.Payers, name)
		}
	}
	if u.Colors == nil {
		u.Colors = make(map[string]string)
	}
	if u.Icons == nil {
		u.Icons = make(map[string]string)
	}
	if color != "" {
		u.Colors[name] = color
	}
	if icon != "" {
		u.Icons[name] = icon
	}
	return nil
}

// remove deletes name from scope along with its metadata. Deleting an unknown
// name is reported as ErrNotFound.
func (u *UserCategories) remove(scope CategoryScope, name string) error {
	list := u.names(scope)
	i := slices.Index(list, name)
	if i < 0 {
		return fmt.Errorf("%w: %s category %q", ErrNotFound, scope, name)
	}
	switch scope {
	case ExpenseScope:
		u.Expense = slices.Delete(slices.Clone(u.Expense), i, i+1)
	case IncomeScope:
		u.Income = slices.Delete(slices.Clone(u.Income), i, i+1)
	case PayerScope:
		u.Payers = slices.Delete(slices.Clone(u.Payers), i, i+1)
	}
	delete(u.Colors, name)
	delete(u.Icons, name)
	return nil
}

// clone returns a deep copy, so staged mutations never leak into a snapshot.
func (u UserCategories) clone() UserCategories {
	c := UserCategories{
		Expense: slices.Clone(u.Expense),
		Income:  slices.Clone(u.Income),
		Payers:  slices.Clone(u.Payers),
		Colors:  make(map[string]string, len(u.Colors)),
		Icons:   make(map[string]string, len(u.Icons)),
	}
	for k, v := range u.Colors {
		c.Colors[k] = v
	}
	for k, v := range u.Icons {
		c.Icons[k] = v
	}
	return c
}

// IsZero reports whether the registry holds nothing worth persisting.
func (u UserCategories) IsZero() bool {
	return len(u.Expense) == 0 && len(u.Income) == 0 && len(u.Payers) == 0 &&
		len(u.Colors) == 0 && len(u.Icons) == 0
}

func (u UserCategories) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("expense", u.Expense)
	w.Optional("income", u.Income)
	w.Optional("payers", u.Payers)
	if len(u.Colors) > 0 {
		w.Append("colors", u.Colors)
	}
	if len(u.Icons) > 0 {
		w.Append("icons", u.Icons)
	}
	return w.MarshalJSON()
}

func (u *UserCategories) UnmarshalJSON(data []byte) error {
	var temp struct {
		Expense []string          `json:"expense"`
		Income  []string          `json:"income"`
		Payers  []string          `json:"payers"`
		Colors  map[string]string `json:"colors"`
		Icons   map[string]string `json:"icons"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*u = UserCategories{
		Expense: temp.Expense,
		Income:  temp.Income,
		Payers:  temp.Payers,
		Colors:  temp.Colors,
		Icons:   temp.Icons,
	}
	if u.Colors == nil {
		u.Colors = make(map[string]string)
	}
	if u.Icons == nil {
		u.Icons = make(map[string]string)
	}
	return nil
}
