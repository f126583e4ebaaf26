package models

// Grade is one entry of the read-only grade catalog
type Grade struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" example:"Primero"`
	Sections []string `json:"sections"`
}

// GradeCatalog is the static list of grades offered by the school, in
// teaching order.
var GradeCatalog = []Grade{
	{ID: "1", Name: "Preescolar", Sections: []string{"A", "B"}},
	{ID: "2", Name: "Primero", Sections: []string{"A", "B", "C"}},
	{ID: "3", Name: "Segundo", Sections: []string{"A", "B", "C"}},
	{ID: "4", Name: "Tercero", Sections: []string{"A", "B"}},
	{ID: "5", Name: "Cuarto", Sections: []string{"A", "B"}},
	{ID: "6", Name: "Quinto", Sections: []string{"A", "B"}},
	{ID: "7", Name: "Sexto", Sections: []string{"A"}},
}
