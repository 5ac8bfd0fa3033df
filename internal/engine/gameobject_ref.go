package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
//
//	type Anchored struct {
//	    engine.BaseComponent
//	    Anchor engine.GameObjectRef
//	}
//
//	func (a *Anchored) Start() {
//	    if obj := a.Anchor.Get(a.GetGameObject().Scene); obj != nil {
//	        // ...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference. Returns nil if the reference is empty, the
// scene is nil, or the object no longer exists.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something. It does not
// check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
