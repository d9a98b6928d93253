// Package edit drives a block bag the way a bulk world-editing engine does.
//
// Each block change is an exchange with the bag: the block being removed is
// stored, the block being placed is fetched. Running out of a material or of
// room is part of normal operation, so a Session absorbs OutOfStock and
// OutOfSpace, counts them per item kind and carries on. Invalid requests are
// defects and are always returned.
//
//	bag := alloc.NewForSource(inv, alloc.Options{Lookup: itemtype.Default()})
//	s := edit.NewSession(bag, edit.Options{Logger: logger})
//	for _, change := range changes {
//	    if _, err := s.Replace(change.Pos, change.Old, change.New); err != nil {
//	        return err
//	    }
//	}
//	summary, err := s.Finish()
//
// Finish is the single point where the inventory is written back.
package edit
