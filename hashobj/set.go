package hashobj

func cloneUnlessOwned(b []byte, owned bool) []byte {
	if owned {
		return b
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// TryConversion converts a PACKED HashObject to TABLE up front if any
// of fieldsAndValues exceeds MAX_PACKED_VALUE (§4.3 "try_conversion"),
// so a caller about to write a batch of fields doesn't pay for
// repeated in-place PACKED growth before the inevitable conversion.
func (h *HashObject) TryConversion(fieldsAndValues ...[]byte) {
	if h.repr != Packed {
		return
	}
	for _, b := range fieldsAndValues {
		if len(b) > h.cfg.MaxPackedValue {
			h.convertToTable()
			return
		}
	}
}

// Set stores field/value, reporting whether field already existed.
// flags controls whether field/value are copied or retained as-is
// (§4.3 "flags determine whether the function takes ownership").
func (h *HashObject) Set(field, value []byte, flags SetFlags) (existedBefore bool) {
	if h.repr == Packed && (len(field) > h.cfg.MaxPackedValue || len(value) > h.cfg.MaxPackedValue) {
		h.convertToTable()
	}

	if h.repr == Packed {
		idx, found := h.packed.Find(field)
		v := cloneUnlessOwned(value, flags&ValueOwned != 0)
		if found {
			h.packed.ReplaceValueAt(idx, v)
		} else {
			f := cloneUnlessOwned(field, flags&FieldOwned != 0)
			h.packed.Append(f, v)
		}
		if h.packed.Len() > h.cfg.MaxPackedEntries {
			h.convertToTable()
		}
		return found
	}

	key := string(field)
	v := cloneUnlessOwned(value, flags&ValueOwned != 0)
	isNew := h.table.Replace(key, v)
	return !isNew
}
