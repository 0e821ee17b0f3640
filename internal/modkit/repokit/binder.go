package repokit

// Binder binds a domain repository to a specific Queryer, usually the
// tx-scoped one handed to the function passed to TxRunner.Tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics early on programmer error (nil q)
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind validates q then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
