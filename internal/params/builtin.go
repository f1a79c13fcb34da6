package params

// infoParams and tcParams are the two built-in origin groups: search
// heuristics ("info") and time-control heuristics ("tc"). Values are
// carried over from the engine's tuning defaults.
var infoParams = map[string]Descriptor{
	"futilityMarginGain":          {Lo: 100, Hi: 200, Default: 165, CEnd: 20, REnd: 0.0020},
	"reductionA":                  {Lo: 1000, Hi: 2000, Default: 1642, CEnd: 100, REnd: 0.0020},
	"reductionB":                  {Lo: 500, Hi: 1500, Default: 1024, CEnd: 100, REnd: 0.0020},
	"reductionC":                  {Lo: 500, Hi: 1500, Default: 916, CEnd: 100, REnd: 0.0020},
	"statBonusA":                  {Lo: 1, Hi: 30, Default: 12, CEnd: 3, REnd: 0.0020},
	"statBonusB":                  {Lo: 100, Hi: 500, Default: 282, CEnd: 40, REnd: 0.0020},
	"statBonusC":                  {Lo: 100, Hi: 500, Default: 349, CEnd: 40, REnd: 0.0020},
	"statBonusD":                  {Lo: 1000, Hi: 2000, Default: 1594, CEnd: 100, REnd: 0.0020},
	"reductionInit":               {Lo: 1000, Hi: 3000, Default: 2026, CEnd: 200, REnd: 0.0020},
	"counterMoveHistoryThreshold": {Lo: -150, Hi: 0, Default: -1, CEnd: 15, REnd: 0.0020},
	"aspirationDeltaA":            {Lo: 0, Hi: 30, Default: 10, CEnd: 3, REnd: 0.0020},
	"aspirationDeltaB":            {Lo: 10000, Hi: 20000, Default: 15620, CEnd: 1000, REnd: 0.0020},
	"aspirationDeltaC":            {Lo: 2, Hi: 7, Default: 4, CEnd: 0.5, REnd: 0.0020},
	"aspirationDeltaD":            {Lo: 1, Hi: 10, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"bonusInitialGain":            {Lo: -100, Hi: 0, Default: -19, CEnd: 10, REnd: 0.0020},
	"bonusInitialThreshold":       {Lo: 1000, Hi: 3000, Default: 1914, CEnd: 200, REnd: 0.0020},
	"improvementDefault":          {Lo: 0, Hi: 400, Default: 168, CEnd: 40, REnd: 0.0020},
	"mateBetaDelta":               {Lo: 50, Hi: 250, Default: 137, CEnd: 20, REnd: 0.0020},
	"mateDepthThreshold":          {Lo: 1, Hi: 10, Default: 5, CEnd: 0.5, REnd: 0.0020},
	"mateExtraBonus":              {Lo: 10, Hi: 100, Default: 62, CEnd: 9, REnd: 0.0020},
	"futilityBaseDelta":           {Lo: 50, Hi: 200, Default: 153, CEnd: 15, REnd: 0.0020},
	"razoringA":                   {Lo: -500, Hi: 0, Default: -369, CEnd: 50, REnd: 0.0020},
	"razoringB":                   {Lo: -500, Hi: 0, Default: -254, CEnd: 50, REnd: 0.0020},
	"futilityA":                   {Lo: 100, Hi: 500, Default: 303, CEnd: 40, REnd: 0.0020},
	"futilityDepth":               {Lo: 3, Hi: 12, Default: 8, CEnd: 0.5, REnd: 0.0020},
	"nullMoveThreshA":             {Lo: 10000, Hi: 20000, Default: 17139, CEnd: 1000, REnd: 0.0020},
	"nullMoveThreshB":             {Lo: -100, Hi: 0, Default: -20, CEnd: 10, REnd: 0.0020},
	"nullMoveThreshC":             {Lo: 1, Hi: 20, Default: 13, CEnd: 1, REnd: 0.0020},
	"nullMoveThreshD":             {Lo: 100, Hi: 500, Default: 233, CEnd: 40, REnd: 0.0020},
	"nullMoveThreshE":             {Lo: 1, Hi: 50, Default: 25, CEnd: 5, REnd: 0.0020},
	"nullMoveRA":                  {Lo: 100, Hi: 500, Default: 168, CEnd: 40, REnd: 0.0020},
	"nullMoveRB":                  {Lo: 1, Hi: 20, Default: 7, CEnd: 1, REnd: 0.0020},
	"nullMoveRC":                  {Lo: 1, Hi: 10, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"nullMoveRD":                  {Lo: 1, Hi: 10, Default: 4, CEnd: 0.5, REnd: 0.0020},
	"nullMoveRE":                  {Lo: 100, Hi: 1500, Default: 861, CEnd: 140, REnd: 0.0020},
	"nullMoveDepth":               {Lo: 8, Hi: 20, Default: 14, CEnd: 0.5, REnd: 0.0020},
	"nullMovePlyA":                {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"nullMovePlyB":                {Lo: 1, Hi: 8, Default: 4, CEnd: 0.8, REnd: 0.0020},
	"probCutBetaA":                {Lo: 100, Hi: 300, Default: 191, CEnd: 20, REnd: 0.0020},
	"probCutBetaB":                {Lo: 10, Hi: 100, Default: 54, CEnd: 9, REnd: 0.0020},
	"probCutDepthLimit":           {Lo: 1, Hi: 10, Default: 4, CEnd: 0.5, REnd: 0.0020},
	"probCutDepth":                {Lo: 1, Hi: 10, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"ttDecreaseA":                 {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"ttDecreaseB":                 {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"ttDecreaseDepth":             {Lo: 1, Hi: 20, Default: 9, CEnd: 0.5, REnd: 0.0020},
	"probCutBetaC":                {Lo: 300, Hi: 500, Default: 417, CEnd: 20, REnd: 0.0020},
	"probCutDepthThresh":          {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"shallowPruningDepthA":        {Lo: 1, Hi: 15, Default: 7, CEnd: 1, REnd: 0.0020},
	"shallowPruningA":             {Lo: 100, Hi: 300, Default: 180, CEnd: 20, REnd: 0.0020},
	"shallowPruningB":             {Lo: 100, Hi: 300, Default: 201, CEnd: 20, REnd: 0.0020},
	"shallowPruningC":             {Lo: 1, Hi: 10, Default: 6, CEnd: 0.5, REnd: 0.0020},
	"sseThreshold":                {Lo: -500, Hi: 0, Default: -222, CEnd: 50, REnd: 0.0020},
	"shallowPruningDepthB":        {Lo: 1, Hi: 10, Default: 5, CEnd: 0.5, REnd: 0.0020},
	"shallowPruningD":             {Lo: -5000, Hi: -1000, Default: -3875, CEnd: 400, REnd: 0.0020},
	"shallowPruningGain":          {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"shallowPruningDepthC":        {Lo: 1, Hi: 20, Default: 13, CEnd: 1, REnd: 0.0020},
	"shallowPruningE":             {Lo: 50, Hi: 200, Default: 106, CEnd: 15, REnd: 0.0020},
	"shallowPruningF":             {Lo: 100, Hi: 200, Default: 145, CEnd: 10, REnd: 0.0020},
	"shallowPruningG":             {Lo: 10, Hi: 100, Default: 52, CEnd: 9, REnd: 0.0020},
	"shallowPruningH":             {Lo: -100, Hi: 0, Default: -24, CEnd: 10, REnd: 0.0020},
	"shallowPruningI":             {Lo: -50, Hi: 0, Default: -15, CEnd: 5, REnd: 0.0020},
	"singularExtDepthA":           {Lo: 1, Hi: 8, Default: 4, CEnd: 0.5, REnd: 0.0020},
	"singularExtDepthB":           {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"singularExtDepthC":           {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"singularBetaA":               {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"singularExtentionA":          {Lo: 10, Hi: 50, Default: 25, CEnd: 4, REnd: 0.0020},
	"singularExtentionB":          {Lo: 5, Hi: 15, Default: 9, CEnd: 0.5, REnd: 0.0020},
	"singularExtDepthD":           {Lo: 5, Hi: 15, Default: 9, CEnd: 0.5, REnd: 0.0020},
	"singularExtentionC":          {Lo: 50, Hi: 150, Default: 82, CEnd: 10, REnd: 0.0020},
	"singularExtentionD":          {Lo: 1000, Hi: 10000, Default: 5177, CEnd: 900, REnd: 0.0020},
	"lmrDepthThreshold":           {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"lmrMoveCountThreshold":       {Lo: 1, Hi: 15, Default: 7, CEnd: 0.5, REnd: 0.0020},
	"lmrDecTTPv":                  {Lo: 0, Hi: 3, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"lmrDecMoveCount":             {Lo: 0, Hi: 3, Default: 1, CEnd: 0.5, REnd: 0.0020},
	"lmrDecSingular":              {Lo: 0, Hi: 3, Default: 1, CEnd: 0.5, REnd: 0.0020},
	"lmrIncCutNode":               {Lo: 0, Hi: 3, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"lmrIncTTCapture":             {Lo: 0, Hi: 3, Default: 1, CEnd: 0.5, REnd: 0.0020},
	"lmrPvNodeA":                  {Lo: 1, Hi: 5, Default: 1, CEnd: 0.5, REnd: 0.0020},
	"lmrPvNodeB":                  {Lo: 1, Hi: 20, Default: 11, CEnd: 1, REnd: 0.0020},
	"lmrPvNodeC":                  {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"lmrCutoffCntThresh":          {Lo: 1, Hi: 5, Default: 3, CEnd: 0.5, REnd: 0.0020},
	"lmrIncCutoffCnt":             {Lo: 0, Hi: 3, Default: 1, CEnd: 0.5, REnd: 0.0020},
	"lmrStatGain":                 {Lo: 1, Hi: 5, Default: 2, CEnd: 0.5, REnd: 0.0020},
	"lmrStatDelta":                {Lo: 1000, Hi: 10000, Default: 4433, CEnd: 900, REnd: 0.0020},
	"lmrRDecA":                    {Lo: 10000, Hi: 20000, Default: 13628, CEnd: 1000, REnd: 0.0020},
	"lmrRDecB":                    {Lo: 1000, Hi: 10000, Default: 4000, CEnd: 900, REnd: 0.0020},
	"lmrRDecDepthA":               {Lo: 3, Hi: 10, Default: 7, CEnd: 0.5, REnd: 0.0020},
	"lmrRDecDepthB":               {Lo: 11, Hi: 30, Default: 19, CEnd: 1, REnd: 0.0020},
	"lmrDeepSearchA":              {Lo: 10, Hi: 100, Default: 64, CEnd: 9, REnd: 0.0020},
	"lmrDeepSearchB":              {Lo: 1, Hi: 20, Default: 11, CEnd: 1, REnd: 0.0020},
}

var tcParams = map[string]Descriptor{
	"fallingEvalA":         {Lo: 10, Hi: 100, Default: 66, CEnd: 10, REnd: 0.0020},
	"fallingEvalB":         {Lo: 5, Hi: 25, Default: 14, CEnd: 2, REnd: 0.0020},
	"fallingEvalC":         {Lo: 3, Hi: 10, Default: 6, CEnd: 1, REnd: 0.0020},
	"fallingEvalD":         {Lo: 100, Hi: 1000, Default: 617, CEnd: 90, REnd: 0.0020},
	"fallingEvalClampMin":  {Lo: 1, Hi: 99, Default: 51, CEnd: 10, REnd: 0.0020},
	"fallingEvalClampMax":  {Lo: 101, Hi: 200, Default: 151, CEnd: 10, REnd: 0.0020},
	"timeReductionDepth":   {Lo: 4, Hi: 12, Default: 8, CEnd: 0.5, REnd: 0.0020},
	"timeReductionA":       {Lo: 100, Hi: 200, Default: 156, CEnd: 10, REnd: 0.0020},
	"timeReductionB":       {Lo: 30, Hi: 120, Default: 69, CEnd: 10, REnd: 0.0020},
	"timeReductionC":       {Lo: 100, Hi: 180, Default: 140, CEnd: 10, REnd: 0.0020},
	"timeReductionD":       {Lo: 150, Hi: 250, Default: 217, CEnd: 10, REnd: 0.0020},
	"bestMoveInstabilityA": {Lo: 100, Hi: 250, Default: 179, CEnd: 15, REnd: 0.0020},
	"totalTimeGain":        {Lo: 30, Hi: 100, Default: 75, CEnd: 5, REnd: 0.0020},
	"optExtraA":            {Lo: 50, Hi: 150, Default: 100, CEnd: 10, REnd: 0.0020},
	"optExtraB":            {Lo: 50, Hi: 150, Default: 125, CEnd: 10, REnd: 0.0020},
	"optExtraC":            {Lo: 50, Hi: 150, Default: 111, CEnd: 10, REnd: 0.0020},
	"optConstantA":         {Lo: 100, Hi: 500, Default: 334, CEnd: 40, REnd: 0.0020},
	"optConstantB":         {Lo: 10, Hi: 50, Default: 30, CEnd: 4, REnd: 0.0020},
	"optConstantC":         {Lo: 10, Hi: 100, Default: 49, CEnd: 10, REnd: 0.0020},
	"maxConstantA":         {Lo: 100, Hi: 500, Default: 340, CEnd: 40, REnd: 0.0020},
	"maxConstantB":         {Lo: 100, Hi: 500, Default: 300, CEnd: 40, REnd: 0.0020},
	"maxConstantC":         {Lo: 100, Hi: 500, Default: 276, CEnd: 40, REnd: 0.0020},
	"optScaleA":            {Lo: 100, Hi: 200, Default: 120, CEnd: 10, REnd: 0.0020},
	"optScaleB":            {Lo: 20, Hi: 40, Default: 31, CEnd: 2, REnd: 0.0020},
	"optScaleC":            {Lo: 30, Hi: 60, Default: 44, CEnd: 3, REnd: 0.0020},
	"optScaleD":            {Lo: 10, Hi: 50, Default: 21, CEnd: 4, REnd: 0.0020},
	"maxScaleA":            {Lo: 50, Hi: 100, Default: 69, CEnd: 5, REnd: 0.0020},
	"maxScaleB":            {Lo: 100, Hi: 150, Default: 122, CEnd: 5, REnd: 0.0020},
	"maximumTimeA":         {Lo: 50, Hi: 150, Default: 84, CEnd: 10, REnd: 0.0020},
	"maximumTimeB":         {Lo: 0, Hi: 30, Default: 10, CEnd: 3, REnd: 0.0020},
}
