package principals

type Repo interface {
	Upsert(principal *Principal) error
	Delete(email string) error
	GetByEmail(email string) (*Principal, error)
	GetByID(id string) (*Principal, error)
	List(offset, limit int) ([]*Principal, error)
}
