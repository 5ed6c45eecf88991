package runner

import "time"

// writeLockTimeout bounds how long a run waits for another run holding the output lock.
const writeLockTimeout = 5 * time.Second
