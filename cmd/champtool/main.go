// Command champtool builds a sequenced set from stdin, one element per
// line, and reports its size and iteration order. It exists to exercise
// the public champ API end to end, the way critbit/dict/example does for
// the teacher's own crit-bit dictionary.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/champ-go/champ"
)

func main() {
	reverse := flag.Bool("reverse", false, "print elements in reverse insertion order")
	dedupe := flag.Bool("first", false, "keep each element's first occurrence instead of its last")
	flag.Parse()

	set := champ.NewMutableSequencedSet[string](champ.HashString(), champ.EqualComparable[string]())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if *dedupe && set.Contains(line) {
			continue
		}
		if !*dedupe {
			set.Remove(line)
		}
		set.AddLast(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("champtool: reading stdin: %v", err)
	}

	fmt.Printf("%d distinct elements\n", set.Size())

	it := set.Iterator()
	if *reverse {
		it = set.ReverseIterator()
	}
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			log.Fatalf("champtool: %v", err)
		}
		fmt.Println(v)
	}
}
