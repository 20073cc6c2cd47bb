package parts

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibrary() *Library {
	return NewLibrary([]Part{
		{ID: "1", Name: "Micro:bit V2", Category: "Board"},
		{ID: "2", Name: "LED Matrix", Category: "Output"},
		{ID: "3", Name: "Push Button A", Category: "Input"},
		{ID: "4", Name: "Push Button B", Category: "Input"},
		{ID: "5", Name: "Temperature Sensor", Category: "Sensor"},
		{ID: "6", Name: "Accelerometer", Category: "Sensor"},
	})
}

func partIDs(ps []Part) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

// occurrences counts how many times id appears across all buckets.
func occurrences(s *Store, id string) int {
	n := 0
	for _, b := range Buckets() {
		for _, p := range s.Contents(b) {
			if p.ID == id {
				n++
			}
		}
	}
	return n
}

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore(testLibrary())
	for _, b := range Buckets() {
		assert.Empty(t, s.Contents(b), "bucket %s", b)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, partIDs(s.Unassigned()))
	assert.Equal(t, 0, s.Assigned())
}

func TestStore_AssignThenMove(t *testing.T) {
	s := NewStore(testLibrary())

	s.Assign("5", BucketInput)
	assert.Equal(t, []string{"5"}, partIDs(s.Contents(BucketInput)))

	s.Assign("5", BucketOutput)
	assert.Empty(t, s.Contents(BucketInput))
	assert.Equal(t, []string{"5"}, partIDs(s.Contents(BucketOutput)))

	b, ok := s.Location("5")
	require.True(t, ok)
	assert.Equal(t, BucketOutput, b)
}

func TestStore_AssignSameBucketMovesToEnd(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("3", BucketInput)
	s.Assign("4", BucketInput)
	s.Assign("3", BucketInput)

	assert.Equal(t, []string{"4", "3"}, partIDs(s.Contents(BucketInput)))
	assert.Equal(t, 1, occurrences(s, "3"))
}

func TestStore_AssignPreservesInsertionOrder(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("6", BucketInput)
	s.Assign("3", BucketInput)
	s.Assign("5", BucketInput)

	assert.Equal(t, []string{"6", "3", "5"}, partIDs(s.Contents(BucketInput)))
}

func TestStore_AssignIgnoresUnknowns(t *testing.T) {
	s := NewStore(testLibrary())
	var changes []Change
	s.OnChange(func(c Change) { changes = append(changes, c) })

	s.Assign("99", BucketInput)
	s.Assign("1", Bucket("mystery"))

	for _, b := range Buckets() {
		assert.Empty(t, s.Contents(b))
	}
	assert.Empty(t, changes)
	assert.Nil(t, s.Contents(Bucket("mystery")))
}

func TestStore_Unassign(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("1", BucketProcess)
	s.Assign("2", BucketOutput)

	s.Unassign(BucketProcess, "1")
	assert.Empty(t, s.Contents(BucketProcess))
	assert.Equal(t, []string{"2"}, partIDs(s.Contents(BucketOutput)))

	_, ok := s.Location("1")
	assert.False(t, ok)
	assert.Equal(t, []string{"1", "3", "4", "5", "6"}, partIDs(s.Unassigned()))
}

func TestStore_UnassignWrongBucketIsNoop(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("2", BucketOutput)
	before := s.Snapshot()

	var changes []Change
	s.OnChange(func(c Change) { changes = append(changes, c) })

	s.Unassign(BucketInput, "2")
	s.Unassign(BucketInput, "99")
	s.Unassign(Bucket("mystery"), "2")

	assert.Equal(t, before, s.Snapshot())
	assert.Empty(t, changes)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("1", BucketProcess)
	s.Assign("5", BucketInput)

	s.Reset()

	for _, b := range Buckets() {
		assert.Empty(t, s.Contents(b))
	}
	assert.Len(t, s.Unassigned(), 6)
}

func TestStore_ChangeNotifications(t *testing.T) {
	s := NewStore(testLibrary())
	var changes []Change
	s.OnChange(func(c Change) {
		// Observers run after the mutation is committed.
		if c.Kind == ChangeAssign {
			b, ok := s.Location(c.PartID)
			assert.True(t, ok)
			assert.Equal(t, c.To, b)
		}
		changes = append(changes, c)
	})

	s.Assign("5", BucketInput)
	s.Assign("5", BucketOutput)
	s.Unassign(BucketOutput, "5")
	s.Reset()

	want := []Change{
		{Kind: ChangeAssign, PartID: "5", To: BucketInput},
		{Kind: ChangeAssign, PartID: "5", From: BucketInput, To: BucketOutput},
		{Kind: ChangeUnassign, PartID: "5", From: BucketOutput},
		{Kind: ChangeReset},
	}
	assert.Equal(t, want, changes)
}

func TestStore_ContentsIsACopy(t *testing.T) {
	s := NewStore(testLibrary())
	s.Assign("1", BucketProcess)

	got := s.Contents(BucketProcess)
	got[0].Name = "changed"

	assert.Equal(t, "Micro:bit V2", s.Contents(BucketProcess)[0].Name)
}

func TestStore_SingleOccupancyUnderRandomOps(t *testing.T) {
	lib := testLibrary()
	ids := []string{"1", "2", "3", "4", "5", "6", "unknown"}
	buckets := append(Buckets(), Bucket("mystery"))

	r := rand.New(rand.NewPCG(1, 2))
	s := NewStore(lib)

	for i := 0; i < 2000; i++ {
		id := ids[r.IntN(len(ids))]
		b := buckets[r.IntN(len(buckets))]
		if r.IntN(3) == 0 {
			s.Unassign(b, id)
		} else {
			s.Assign(id, b)
		}

		for _, p := range lib.All() {
			n := occurrences(s, p.ID)
			require.LessOrEqual(t, n, 1, "part %s appears %d times after op %d", p.ID, n, i)

			loc, ok := s.Location(p.ID)
			if n == 0 {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.Contains(t, partIDs(s.Contents(loc)), p.ID)
		}
		require.Equal(t, lib.Len(), s.Assigned()+len(s.Unassigned()))
	}
}

func TestStore_NilLibrary(t *testing.T) {
	s := NewStore(nil)
	s.Assign("1", BucketInput)
	assert.Empty(t, s.Contents(BucketInput))
	assert.Empty(t, s.Unassigned())
}
