package model

// All lists every persisted model in dependency order.
func All() []any {
	return []any{&User{}, &Category{}, &Project{}, &Task{}}
}
