package translate

import "strings"

// search matches the remaining declarations against the reverse index,
// trying subsets from the largest down. Once a subset of size k has been
// accepted no smaller subset is tried, so utilities covering several
// declarations win over narrower ones.
func (t *translation) search(props []property) {
	covered := make([]bool, len(props))
	accepted := 0

	for k := min(len(props), t.widest()); k > 0 && k >= accepted; k-- {
		combinations(len(props), k, func(idx []int) {
			kv := make([]string, 0, 2*len(idx))
			for _, i := range idx {
				if covered[i] {
					return
				}
				kv = append(kv, props[i].name, props[i].value)
			}
			class, ok := t.lookup(kv...)
			if !ok {
				return
			}
			suppressed := false
			for _, i := range idx {
				covered[i] = true
				suppressed = suppressed || t.isDefault(props[i].name, class)
			}
			if suppressed {
				return
			}
			t.emit(class, props[idx[0]].pos)
			accepted = k
		})
	}

	for i, p := range props {
		if covered[i] || !t.arbitrary(p.name) {
			continue
		}
		zero, ok := t.lookup(p.name, "0px")
		if !ok || !strings.HasSuffix(zero, "0") {
			continue
		}
		t.emit(strings.TrimSuffix(zero, "0")+"["+p.value+"]", p.pos)
	}
}

// widest returns the largest number of declarations behind one classname.
// Larger subsets cannot match.
func (t *translation) widest() int {
	n := 0
	for key := range t.rev {
		n = max(n, strings.Count(string(key), ";")+1)
	}
	return n
}

// combinations calls fn with every k-subset of [0, n) in lexicographic
// order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func([]int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
