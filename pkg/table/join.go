package table

// LeftJoin joins right onto left by the key column.
//
// The result has all columns of left followed by columns of right except
// the key. Left rows keep their order. A left row produces one output row
// per matching right row (in right order), or a single row with empty
// right cells if nothing matches. Rows with an empty key never match.
func LeftJoin(left, right *Table, key string) (*Table, error) {
	if err := left.Require(key); err != nil {
		return nil, err
	}
	if err := right.Require(key); err != nil {
		return nil, err
	}

	lk, _ := left.Index(key)
	rk, _ := right.Index(key)

	var rightCols []int
	header := make([]string, 0, len(left.Header)+len(right.Header)-1)
	header = append(header, left.Header...)
	for i, v := range right.Header {
		if i == rk {
			continue
		}
		rightCols = append(rightCols, i)
		header = append(header, v)
	}

	matches := make(map[string][]int)
	for i, v := range right.Rows {
		k := cell(v, rk)
		if k == "" {
			continue
		}
		matches[k] = append(matches[k], i)
	}

	rows := make([][]string, 0, len(left.Rows))
	for _, l := range left.Rows {
		idx := matches[cell(l, lk)]
		if len(idx) == 0 {
			rows = append(rows, joinRow(l, len(left.Header), nil, rightCols))
			continue
		}
		for _, i := range idx {
			rows = append(rows,
				joinRow(l, len(left.Header), right.Rows[i], rightCols))
		}
	}
	return New(header, rows), nil
}

func joinRow(l []string, lLen int, r []string, rightCols []int) []string {
	res := make([]string, lLen, lLen+len(rightCols))
	copy(res, l)
	for _, i := range rightCols {
		res = append(res, cell(r, i))
	}
	return res
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
