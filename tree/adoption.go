package tree

import (
	"github.com/loxia-dev/html5/node"
	"github.com/loxia-dev/html5/token"
)

// adoptionAgency implements the "adoption agency algorithm" for the end
// tag named subject: the repair procedure for formatting elements left
// misnested by intervening block content (the classic "<b><p></b>text"
// case). It runs at most 8 outer iterations, each with an inner loop
// capped at 3, per the spec's explicit bailout counters.
func adoptionAgency(b *Builder, subject string) {
	if top := b.oe.top(); top != nil && top.Namespace == node.HTML && top.Data == subject && b.afeIndex(top) == -1 {
		b.oe.pop()
		return
	}

	for outer := 0; outer < 8; outer++ {
		formattingIdx := b.afeIndexByTag(subject)
		if formattingIdx == -1 {
			inBodyEndTagOther(b, token.Token{Type: token.EndTag, Name: subject})
			return
		}
		formatting := b.afe[formattingIdx].node

		if b.oe.index(formatting) == -1 {
			b.errorf("adoption-agency-formatting-not-in-stack")
			b.afe = append(b.afe[:formattingIdx], b.afe[formattingIdx+1:]...)
			return
		}
		if !b.oe.elementInScope(defaultScope, formatting.Data) {
			b.errorf("adoption-agency-formatting-not-in-scope")
			return
		}
		if b.oe.top() != formatting {
			b.errorf("adoption-agency-formatting-not-current")
		}

		formattingStackIdx := b.oe.index(formatting)
		var furthestBlock *node.Node
		furthestIdx := -1
		for i := formattingStackIdx + 1; i < len(b.oe); i++ {
			if b.oe[i].Namespace == node.HTML && isSpecial(b.oe[i].Data) {
				furthestBlock = b.oe[i]
				furthestIdx = i
				break
			}
		}

		if furthestBlock == nil {
			for len(b.oe) > formattingStackIdx {
				b.oe.pop()
			}
			b.removeFromActiveFormatting(formatting)
			return
		}

		commonAncestor := b.oe[formattingStackIdx-1]
		bookmark := formattingIdx

		node1 := furthestBlock
		lastNode := furthestBlock
		nodeIdx := furthestIdx

		for inner := 0; inner < 3; inner++ {
			nodeIdx--
			if nodeIdx <= formattingStackIdx {
				break
			}
			node1 = b.oe[nodeIdx]
			afIdx := b.afeIndex(node1)
			if afIdx == -1 {
				b.removeOEAt(nodeIdx)
				nodeIdx++
				continue
			}
			clone := node.Clone(node1)
			b.afe[afIdx].node = clone
			b.oe[nodeIdx] = clone
			node1 = clone

			if lastNode == furthestBlock {
				bookmark = afIdx + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node1.AppendChild(lastNode)
			lastNode = node1
		}

		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		place, before := b.appropriatePlaceForInsertion(commonAncestor)
		place.InsertBefore(lastNode, before)

		clone := node.Clone(formatting)
		node.ReparentChildren(clone, furthestBlock)
		furthestBlock.AppendChild(clone)

		b.removeFromActiveFormatting(formatting)
		if bookmark > len(b.afe) {
			bookmark = len(b.afe)
		}
		b.afe = append(b.afe[:bookmark], append([]afEntry{{node: clone, tok: b.afe[formattingIdx].tok}}, b.afe[bookmark:]...)...)

		b.oe.removeOE(formatting)
		idx := b.oe.index(furthestBlock)
		b.oe = append(b.oe[:idx+1], append(elementStack{clone}, b.oe[idx+1:]...)...)
	}
}

func (s *elementStack) removeOEAt(i int) {
	*s = append((*s)[:i], (*s)[i+1:]...)
}
