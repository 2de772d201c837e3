package flow

import "github.com/AnatoleLucet/flow/internal"

// Owner collects the unsubscribe funcs of the OnValue and OnEndFunc calls
// made while it runs, and calls them all on Dispose. Owners created inside
// another owner's Run are disposed with it.
type Owner struct {
	owner *internal.Owner
}

func NewOwner() *Owner {
	return &Owner{internal.GetRuntime().NewOwner()}
}

func (o *Owner) Run(fn func()) { o.owner.Run(fn) }

func (o *Owner) Dispose() { o.owner.Dispose() }

func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }
