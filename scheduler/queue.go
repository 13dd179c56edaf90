package scheduler

/* readyItem is a process waiting in the ready queue along with its position in the input */
type readyItem struct {
	process  Process
	position int
	index    int
}

/* readyQueue is a min-heap of readyItems ordered by burst, then arrival, then input position */
type readyQueue []*readyItem

func (rq readyQueue) Len() int { return len(rq) }

func (rq readyQueue) Less(i, j int) bool {
	a, b := rq[i], rq[j]
	if a.process.BurstDuration != b.process.BurstDuration {
		return a.process.BurstDuration < b.process.BurstDuration
	}
	if a.process.ArrivalTime != b.process.ArrivalTime {
		return a.process.ArrivalTime < b.process.ArrivalTime
	}
	return a.position < b.position
}

func (rq readyQueue) Swap(i, j int) {
	rq[i], rq[j] = rq[j], rq[i]
	rq[i].index = i
	rq[j].index = j
}

func (rq *readyQueue) Push(x any) {
	item := x.(*readyItem)
	item.index = len(*rq)
	*rq = append(*rq, item)
}

func (rq *readyQueue) Pop() any {
	old := *rq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*rq = old[0 : n-1]
	return item
}
