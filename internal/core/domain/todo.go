package domain

// ToDo is a single to-do item. UserID is the owning user's id and is
// immutable after creation; CurrentTime is a free-form client-supplied
// timestamp string, stored verbatim.
type ToDo struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TodoText    string `json:"todo_text" gorm:"size:80;not null"`
	CurrentTime string `json:"current_time" gorm:"size:80;not null"`
	Fatto       bool   `json:"fatto" gorm:"not null"`
	UserID      int64  `json:"user_id" gorm:"not null;index"`
}

// ToDoUpdate carries the mutable fields of a PATCH request. Nil pointers
// mean "leave unchanged".
type ToDoUpdate struct {
	TodoText *string
	Fatto    *bool
}
