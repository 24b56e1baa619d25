package domain

import "time"

// Employee is a directory entry without credentials. A nil Deleted timestamp
// means the employee is active.
type Employee struct {
	ID        int        `json:"id" bson:"_id,omitempty"`
	FirstName string     `json:"first_name" bson:"first_name"`
	LastName  string     `json:"last_name" bson:"last_name"`
	Email     string     `json:"email" bson:"email"`
	Created   time.Time  `json:"created" bson:"created"`
	Deleted   *time.Time `json:"deleted,omitempty" bson:"deleted,omitempty"`
}

// Active reports whether the employee has not been soft-deleted.
func (e *Employee) Active() bool {
	return e.Deleted == nil
}
