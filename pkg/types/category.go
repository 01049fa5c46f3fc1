package types

// Category is one node of the user-defined classification tree. ID 0 means
// the category has not been persisted yet; ParentID 0 means root level.
//
// Path is the materialized ancestor-name chain, joined by single spaces,
// computed once when the category is created. Renaming a category does not
// recompute Path for the category or its descendants; Path is frozen at
// creation by contract.
type Category struct {
	ID       int64
	Name     string
	Path     string
	ParentID int64
}

// ChildPath returns the materialized path for a child named name under a
// parent with the given path. A root category's path is its own name.
func ChildPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + " " + name
}
