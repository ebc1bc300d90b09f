package escargot

// structureID is an opaque handle standing in for the object model's
// hidden-class / structure system (out of scope per spec.md §1). Only
// pointer identity matters. An object gets a fresh identity when a
// string-keyed own property is added or removed through Put,
// DefineOwnProperty, Delete or DeleteIndex, and an ArrayObject also on
// every length or mode change and every Slow-mode index write.
// Overwriting an existing named property's value leaves it unchanged,
// and so do these shape changes: filling or emptying a Fast-mode slot
// within the current length, adding a named property through
// ArrayObject.Put, redefining the attributes of an existing
// GenericObject property, and adding or removing a symbol-keyed
// property. The Modification Detector (§4.9) compares structure
// identities to decide whether a snapshot needs repair.
type structureID struct{}

func newStructureID() *structureID {
	return &structureID{}
}
