package recordapi

// Request shapes for the record-store fetch endpoint. Field names follow the
// hosted API's conventions, including the mixed casing on filter clauses.

type FetchParams struct {
	Fields      []FieldSpec  `json:"fields"`
	Where       []Where      `json:"where,omitempty"`
	WhereGroups []WhereGroup `json:"whereGroups,omitempty"`
	OrderBy     []OrderBy    `json:"orderBy,omitempty"`
	PagingInfo  *PagingInfo  `json:"pagingInfo,omitempty"`
}

type FieldSpec struct {
	Field FieldName `json:"field"`
}

type FieldName struct {
	Name string `json:"Name"`
}

// Fields builds the field projection list for a fetch request.
func Fields(names ...string) []FieldSpec {
	specs := make([]FieldSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, FieldSpec{Field: FieldName{Name: name}})
	}
	return specs
}

type Where struct {
	FieldName string `json:"FieldName"`
	Operator  string `json:"Operator"`
	Values    []any  `json:"Values"`
}

type WhereGroup struct {
	Operator  string     `json:"operator"`
	SubGroups []SubGroup `json:"subGroups"`
}

type SubGroup struct {
	Conditions []Condition `json:"conditions"`
}

type Condition struct {
	FieldName string `json:"fieldName"`
	Operator  string `json:"operator"`
	Values    []any  `json:"values"`
}

type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

type PagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ContainsAny builds an OR group of Contains conditions, one per field.
func ContainsAny(query string, fields ...string) WhereGroup {
	group := WhereGroup{Operator: "OR"}
	for _, field := range fields {
		group.SubGroups = append(group.SubGroups, SubGroup{
			Conditions: []Condition{{
				FieldName: field,
				Operator:  "Contains",
				Values:    []any{query},
			}},
		})
	}
	return group
}
