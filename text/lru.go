// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"mousegesture.org/font"
)

type faceCache struct {
	m          map[faceKey]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	key        faceKey
	face       xfont.Face
}

type faceKey struct {
	font font.Font
	ppem fixed.Int26_6
}

const maxSize = 32

func (l *faceCache) Get(k faceKey) (xfont.Face, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.face, true
	}
	return nil, false
}

func (l *faceCache) Put(k faceKey, f xfont.Face) {
	if l.m == nil {
		l.m = make(map[faceKey]*faceElem)
		l.head = new(faceElem)
		l.tail = new(faceElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &faceElem{key: k, face: f}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		if oldest.face != nil {
			oldest.face.Close()
		}
	}
}

func (l *faceCache) remove(lt *faceElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *faceCache) insert(lt *faceElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
