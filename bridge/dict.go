package bridge

import (
	"github.com/wippyai/host-bridge/api"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/host"
)

// DictGet returns the value stored under key in d. With pop set the entry is
// also removed, unless d is locked: then the value is returned together with
// a DictionaryLocked error and d is left unchanged.
func DictGet(d *host.Dict, key string, pop bool) (api.Value, error) {
	return dictGet(NewDecoder(), d, key, pop)
}

// DictSet stores v under key and returns the previous value, or Nil when
// the key is new. On any error d is left unchanged.
func DictSet(d *host.Dict, key string, v api.Value) (api.Value, error) {
	if d == nil {
		return api.Nil(), errors.InvalidInput(errors.PhaseDict, "nil dictionary")
	}
	return dictSet(NewEncoder(d.Heap(), DefaultMaxDepth), NewDecoder(), d, key, v)
}

// DictDel removes key from d, discarding its value.
func DictDel(d *host.Dict, key string) error {
	_, err := DictGet(d, key, true)
	return err
}

func dictGet(dec *Decoder, d *host.Dict, key string, pop bool) (api.Value, error) {
	if d == nil {
		return api.Nil(), errors.InvalidInput(errors.PhaseDict, "nil dictionary")
	}

	item := d.Find(key)
	if item == nil {
		return api.Nil(), errors.KeyNotFound(key)
	}

	rv := dec.Decode(&item.Value)

	if pop {
		if d.Locked() {
			return rv, errors.DictionaryLocked(errors.PhaseDict)
		}
		d.Remove(item)
		host.FreeDictItem(item)
	}

	return rv, nil
}

func dictSet(enc *Encoder, dec *Decoder, d *host.Dict, key string, v api.Value) (api.Value, error) {
	if d == nil {
		return api.Nil(), errors.InvalidInput(errors.PhaseDict, "nil dictionary")
	}
	if d.Locked() {
		return api.Nil(), errors.DictionaryLocked(errors.PhaseDict)
	}
	if key == "" {
		return api.Nil(), errors.EmptyKey(errors.PhaseDict, nil)
	}

	tv, err := enc.Encode(v)
	if err != nil {
		return api.Nil(), err
	}

	rv := api.Nil()
	item := d.Find(key)
	if item == nil {
		item = host.NewDictItem(key)
		d.Add(item)
	} else {
		rv = dec.Decode(&item.Value)
		host.Clear(&item.Value)
	}

	item.Value = host.Copy(&tv)
	host.Clear(&tv)

	return rv, nil
}
