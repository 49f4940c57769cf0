// internal/query/countmap.go
package query

import (
	"bytes"
	"encoding/json"
)

// CountMap đếm số lần xuất hiện theo key và serialize ra JSON object theo
// đúng thứ tự key xuất hiện lần đầu. Map thường của Go không giữ thứ tự
// khi marshal nên phải tự giữ danh sách key.
type CountMap struct {
	keys   []string
	counts map[string]int
}

// NewCountMap tạo một CountMap rỗng.
func NewCountMap() *CountMap {
	return &CountMap{counts: make(map[string]int)}
}

// Inc tăng bộ đếm cho key, ghi nhớ thứ tự xuất hiện lần đầu.
func (m *CountMap) Inc(key string) {
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.counts[key]++
}

// Get trả về số đếm của key (0 nếu chưa từng thấy).
func (m *CountMap) Get(key string) int {
	return m.counts[key]
}

// Len trả về số key khác nhau.
func (m *CountMap) Len() int {
	return len(m.keys)
}

// Keys trả về các key theo thứ tự xuất hiện lần đầu.
func (m *CountMap) Keys() []string {
	return m.keys
}

// MarshalJSON serialize thành JSON object giữ nguyên thứ tự key.
func (m *CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
